package sprite

import (
	"strings"
	"testing"

	"survev-skin-studio/models"
)

func TestBuildFillSolid(t *testing.T) {
	defs, ref, err := BuildFill(models.PartConfig{Primary: "#f8c574", Style: models.FillSolid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defs != "" {
		t.Errorf("solid fill should not emit defs, got %q", defs)
	}
	if ref != "#f8c574" {
		t.Errorf("solid fill should reference the primary color, got %q", ref)
	}
}

func TestBuildFillEmptyStyleDefaultsToSolid(t *testing.T) {
	_, ref, err := BuildFill(models.PartConfig{Primary: "#816537"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "#816537" {
		t.Errorf("got %q", ref)
	}
}

func TestBuildFillLinearGradient(t *testing.T) {
	defs, ref, err := BuildFill(models.PartConfig{
		Primary:   "#f8c574",
		Secondary: "#cba86a",
		Style:     models.FillLinearGradient,
		Angle:     45,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "url(#lg)" {
		t.Errorf("got fill ref %q", ref)
	}
	for _, want := range []string{"<linearGradient", `id="lg"`, "#f8c574", "#cba86a", "rotate(45"} {
		if !strings.Contains(defs, want) {
			t.Errorf("gradient defs missing %q:\n%s", want, defs)
		}
	}
}

func TestBuildFillPatternStyles(t *testing.T) {
	cfg := models.PartConfig{
		Primary:   "#f8c574",
		Secondary: "#cba86a",
		Extra:     "#6e5630",
		Angle:     30,
		Gap:       14,
		Opacity:   0.85,
		Size:      5,
	}
	cases := []struct {
		style models.FillStyle
		ref   string
		want  string
	}{
		{models.FillRadialGradient, "url(#rg)", "<radialGradient"},
		{models.FillDiagonalStripes, "url(#ds)", "patternTransform"},
		{models.FillHorizontalStripes, "url(#hs)", `rotate(0)`},
		{models.FillVerticalStripes, "url(#vs)", `rotate(90)`},
		{models.FillCrosshatch, "url(#ch)", "stroke-width"},
		{models.FillDots, "url(#pd)", "<circle"},
		{models.FillChecker, "url(#ck)", "<rect"},
	}
	for _, c := range cases {
		cfg.Style = c.style
		defs, ref, err := BuildFill(cfg)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.style, err)
			continue
		}
		if ref != c.ref {
			t.Errorf("%s: got fill ref %q, expected %q", c.style, ref, c.ref)
		}
		if !strings.Contains(defs, c.want) {
			t.Errorf("%s: defs missing %q", c.style, c.want)
		}
	}
}

func TestBuildFillRejectsMalformedColors(t *testing.T) {
	if _, _, err := BuildFill(models.PartConfig{Primary: "orange", Style: models.FillSolid}); err == nil {
		t.Error("malformed primary should fail")
	}
	if _, _, err := BuildFill(models.PartConfig{Primary: "", Style: models.FillSolid}); err == nil {
		t.Error("missing primary should fail")
	}
	if _, _, err := BuildFill(models.PartConfig{
		Primary: "#f8c574",
		Style:   models.FillLinearGradient,
	}); err == nil {
		t.Error("gradient without secondary should fail")
	}
}

func TestBuildFillUnknownStyle(t *testing.T) {
	_, _, err := BuildFill(models.PartConfig{Primary: "#f8c574", Style: "Plaid"})
	if err == nil {
		t.Fatal("unknown style should fail")
	}
	if !strings.Contains(err.Error(), "Plaid") {
		t.Errorf("error should name the style: %v", err)
	}
}
