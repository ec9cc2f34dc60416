package preview

import (
	"strings"
	"testing"

	"survev-skin-studio/models"
	"survev-skin-studio/sprite"
)

func testDesign() *models.OutfitDesign {
	part := func(primary string) models.PartConfig {
		return models.PartConfig{Primary: primary, Style: models.FillSolid, Tint: primary}
	}
	return &models.OutfitDesign{
		Name:        "Test Outfit",
		Body:        part("#f8c574"),
		Hands:       part("#f8c574"),
		Feet:        part("#f8c574"),
		Backpack:    part("#816537"),
		LootTint:    "#ffffff",
		StrokeColor: "#000000",
		StrokeWidth: 8,
	}
}

func composeScene(t *testing.T, design *models.OutfitDesign, presetName string) *Scene {
	t.Helper()
	preset, err := PresetByName(presetName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set, err := sprite.BuildSet(design)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scene, err := Compose(design, preset, set, sprite.NewRegistry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return scene
}

func roles(scene *Scene) []string {
	out := make([]string, 0, len(scene.Layers))
	for _, l := range scene.Layers {
		out = append(out, l.Role)
	}
	return out
}

func TestComposeLoadoutOrder(t *testing.T) {
	design := testDesign()
	design.OverlayEnabled = true

	scene := composeScene(t, design, PresetLoadout)
	got := strings.Join(roles(scene), ",")
	want := "backpack,body,overlay,hand-left,hand-right"
	if got != want {
		t.Errorf("layer order %q, expected %q", got, want)
	}
	if scene.StageWidth != 360 || scene.StageHeight != 420 {
		t.Errorf("stage %dx%d, expected 360x420", scene.StageWidth, scene.StageHeight)
	}
}

func TestComposeStandingOrder(t *testing.T) {
	scene := composeScene(t, testDesign(), PresetStanding)
	got := strings.Join(roles(scene), ",")
	want := "body,hand-left,hand-right"
	if got != want {
		t.Errorf("layer order %q, expected %q", got, want)
	}
}

func TestComposeKnockedLimbsBelowBody(t *testing.T) {
	scene := composeScene(t, testDesign(), PresetKnocked)
	got := strings.Join(roles(scene), ",")
	want := "foot-left,foot-right,hand-left,hand-right,body"
	if got != want {
		t.Errorf("layer order %q, expected %q", got, want)
	}

	// The knocked body is tilted.
	body := scene.Layers[len(scene.Layers)-1]
	if !strings.Contains(body.Transform, "rotate(-28deg)") {
		t.Errorf("body transform %q missing tilt", body.Transform)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	design := testDesign()
	design.OverlayEnabled = true

	first := composeScene(t, design, PresetLoadout)
	second := composeScene(t, design, PresetLoadout)
	if len(first.Layers) != len(second.Layers) {
		t.Fatalf("layer counts differ: %d vs %d", len(first.Layers), len(second.Layers))
	}
	for i := range first.Layers {
		if first.Layers[i] != second.Layers[i] {
			t.Errorf("layer %d differs between runs", i)
		}
	}
}

func TestComposeRightHandMirrored(t *testing.T) {
	scene := composeScene(t, testDesign(), PresetStanding)
	for _, l := range scene.Layers {
		if l.Role == "hand-right" && !strings.Contains(l.Transform, "scaleX(-1)") {
			t.Errorf("right hand transform %q should mirror", l.Transform)
		}
		if l.Role == "hand-left" && strings.Contains(l.Transform, "scaleX(-1)") {
			t.Errorf("left hand must not mirror, got %q", l.Transform)
		}
	}
}

func TestComposeAccessoryPlacement(t *testing.T) {
	design := testDesign()
	design.Accessory = models.AccessoryConfig{
		Enabled:  true,
		SpriteID: "front-pom",
		OffsetX:  10,
		OffsetY:  -5,
		Scale:    1.0,
	}

	scene := composeScene(t, design, PresetLoadout)
	r := roles(scene)
	// Below the hand layer by default.
	want := "backpack,body,accessory,hand-left,hand-right"
	if got := strings.Join(r, ","); got != want {
		t.Fatalf("layer order %q, expected %q", got, want)
	}

	var accessory Layer
	for _, l := range scene.Layers {
		if l.Role == "accessory" {
			accessory = l
		}
	}
	// Centered on the body (body left 105, top 156, size 150; sprite 180x180)
	// plus the configured offsets.
	if accessory.Left != 100 || accessory.Top != 136 {
		t.Errorf("accessory at (%d, %d), expected (100, 136)", accessory.Left, accessory.Top)
	}
}

func TestComposeAccessoryAboveHands(t *testing.T) {
	design := testDesign()
	design.Accessory = models.AccessoryConfig{
		Enabled:   true,
		SpriteID:  "front-pom",
		Scale:     1.0,
		AboveHand: true,
	}

	scene := composeScene(t, design, PresetStanding)
	r := roles(scene)
	if r[len(r)-1] != "accessory" {
		t.Errorf("accessory should paint last, got order %v", r)
	}
}

func TestComposeUnresolvableAccessory(t *testing.T) {
	design := testDesign()
	design.Accessory = models.AccessoryConfig{Enabled: true, SpriteID: "front-ghost", Scale: 1.0}

	preset, _ := PresetByName(PresetStanding)
	set, err := sprite.BuildSet(design)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Compose(design, preset, set, sprite.NewRegistry()); err == nil {
		t.Fatal("unresolvable accessory reference should fail")
	}
}

func TestPresetByName(t *testing.T) {
	p, err := PresetByName("")
	if err != nil || p.Name != PresetStanding {
		t.Errorf("empty name should default to Standing, got %q (%v)", p.Name, err)
	}
	if _, err := PresetByName("Sitting"); err == nil {
		t.Error("unknown preset should fail")
	}
}
