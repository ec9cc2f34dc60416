package sprite

import (
	"strings"
	"testing"
)

func TestTransformRejectsNonPositiveScale(t *testing.T) {
	asset := BodyAsset("", "#f8c574")
	for _, scale := range []float64{0, -1, -0.001} {
		markup, err := Transform(asset, 0, scale, 0, 0)
		if err == nil {
			t.Errorf("scale %v should be rejected", scale)
		}
		if markup != "" {
			t.Errorf("scale %v produced markup despite failing", scale)
		}
	}
}

func TestTransformIdentityReturnsOriginal(t *testing.T) {
	asset := BodyAsset("", "#f8c574")
	markup, err := Transform(asset, 0, 1.0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if markup != asset.Markup {
		t.Error("identity transform should return the markup untouched")
	}
}

func TestTransformRotatesAroundCentre(t *testing.T) {
	asset := BodyAsset("", "#f8c574")
	markup, err := Transform(asset, 30, 1.0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"translate(70.00,70.00)", "rotate(30.00)", "translate(-70.00,-70.00)"} {
		if !strings.Contains(markup, want) {
			t.Errorf("transform group missing %q:\n%s", want, markup)
		}
	}
	if strings.Contains(markup, "scale(") {
		t.Error("unit scale should not be emitted")
	}
}

func TestTransformOffsetOnly(t *testing.T) {
	asset := BodyAsset("", "#f8c574")
	markup, err := Transform(asset, 0, 1.0, 12, -6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(markup, "translate(12.00,-6.00)") {
		t.Errorf("offset translate missing:\n%s", markup)
	}
	if strings.Contains(markup, "rotate(") {
		t.Error("zero rotation should not be emitted")
	}
}

func TestTransformDoesNotMutateSource(t *testing.T) {
	asset := BodyAsset("", "#f8c574")
	before := asset.Markup
	if _, err := Transform(asset, 45, 1.5, 10, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Markup != before {
		t.Error("source asset markup was mutated")
	}
}
