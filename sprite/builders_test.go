package sprite

import (
	"strings"
	"testing"

	"survev-skin-studio/models"
)

func solidPart(primary string) models.PartConfig {
	return models.PartConfig{Primary: primary, Style: models.FillSolid, Tint: primary}
}

func TestBodyAsset(t *testing.T) {
	asset := BodyAsset("", "#f8c574")
	if asset.ID != BodyID {
		t.Errorf("got id %q", asset.ID)
	}
	if asset.Width != 140 || asset.Height != 140 {
		t.Errorf("got %vx%v, expected 140x140", asset.Width, asset.Height)
	}
	if !strings.Contains(asset.Markup, `id="body"`) {
		t.Error("body fill region marker missing")
	}
	if strings.Contains(asset.Markup, "stroke=") {
		t.Error("body sprite must be strokeless")
	}
	if !asset.HasRegion("body") {
		t.Error("body region not declared")
	}
}

func TestHandsAssetShapes(t *testing.T) {
	cases := []struct {
		shape string
		want  string
	}{
		{ShapeCircle, "<ellipse"},
		{ShapeRoundedSquare, "<rect"},
		{ShapeDiamond, "<polygon"},
		{ShapeTeardrop, "<path"},
	}
	for _, c := range cases {
		cfg := solidPart("#f8c574")
		cfg.Shape = c.shape
		asset := HandsAsset("", "#f8c574", cfg, "#333333", 11.096, models.OutlineSolid)
		if asset.ID != HandsID {
			t.Errorf("%s: got id %q", c.shape, asset.ID)
		}
		if !strings.Contains(asset.Markup, c.want) {
			t.Errorf("%s: markup missing %q", c.shape, c.want)
		}
		if !strings.Contains(asset.Markup, `id="hands"`) {
			t.Errorf("%s: hands fill region marker missing", c.shape)
		}
	}
}

func TestOutlineStyles(t *testing.T) {
	cfg := solidPart("#f8c574")

	glow := HandsAsset("", "#f8c574", cfg, "#222222", 8, models.OutlineGlow)
	if !strings.Contains(glow.Markup, `filter="url(#hands-glow)"`) || !strings.Contains(glow.Markup, "feGaussianBlur") {
		t.Error("glow outline should blur through an svg filter")
	}

	grad := HandsAsset("", "#f8c574", cfg, "#222222", 8, models.OutlineGradient)
	if !strings.Contains(grad.Markup, `stroke="url(#hands-stroke-grad)"`) {
		t.Error("gradient outline should stroke with the generated gradient")
	}

	dashed := HandsAsset("", "#f8c574", cfg, "#222222", 8, models.OutlineDashed)
	if !strings.Contains(dashed.Markup, `stroke-dasharray="12.80 7.20"`) {
		t.Errorf("dashed outline dasharray wrong:\n%s", dashed.Markup)
	}

	double := HandsAsset("", "#f8c574", cfg, "#222222", 8, models.OutlineDouble)
	if strings.Count(double.Markup, "<ellipse") != 2 {
		t.Error("double stroke should render an outer shape behind the hand")
	}
}

func TestLootShirtAsset(t *testing.T) {
	asset, err := LootShirtAsset("#ffffff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.ID != LootShirtID {
		t.Errorf("got id %q", asset.ID)
	}
	if !strings.Contains(asset.Markup, `id="loot"`) {
		t.Error("loot fill region marker missing")
	}

	if _, err := LootShirtAsset("white"); err == nil {
		t.Error("malformed loot tint should fail")
	}
}

func TestBuildSet(t *testing.T) {
	design := &models.OutfitDesign{
		Body:        solidPart("#f8c574"),
		Hands:       solidPart("#f8c574"),
		Feet:        solidPart("#f8c574"),
		Backpack:    solidPart("#816537"),
		LootTint:    "#ffffff",
		StrokeColor: "#000000",
		StrokeWidth: 8,
	}
	set, err := BuildSet(design)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range []struct {
		id    string
		asset models.SpriteAsset
	}{
		{BodyID, set.Body},
		{HandsID, set.Hands},
		{FeetID, set.Feet},
		{BackpackID, set.Backpack},
		{LootShirtID, set.Loot},
	} {
		if c.asset.ID != c.id {
			t.Errorf("slot asset id %q, expected %q", c.asset.ID, c.id)
		}
		if c.asset.Markup == "" {
			t.Errorf("%s: empty markup", c.id)
		}
	}
}

func TestBuildSetRejectsBadPalette(t *testing.T) {
	design := &models.OutfitDesign{
		Body:     models.PartConfig{Primary: "mauve", Style: models.FillSolid},
		Hands:    solidPart("#f8c574"),
		Feet:     solidPart("#f8c574"),
		Backpack: solidPart("#816537"),
		LootTint: "#ffffff",
	}
	if _, err := BuildSet(design); err == nil {
		t.Fatal("malformed body color should fail the whole set")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	asset, err := r.Get("front-pom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !asset.HasRegion("accessory") {
		t.Error("accessory fill region not declared")
	}

	if _, err := r.Get("front-missing"); err == nil {
		t.Error("unknown sprite reference should fail")
	}

	summaries := r.List()
	if len(summaries) == 0 {
		t.Fatal("registry should list its built-in sprites")
	}
	seen := make(map[string]bool)
	for _, s := range summaries {
		if seen[s.ID] {
			t.Errorf("duplicate sprite id %q", s.ID)
		}
		seen[s.ID] = true
	}
}
