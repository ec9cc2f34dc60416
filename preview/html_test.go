package preview

import (
	"strings"
	"testing"

	"survev-skin-studio/sprite"
)

func TestRenderHTML(t *testing.T) {
	design := testDesign()
	design.OverlayEnabled = true

	preset, err := PresetByName(PresetLoadout)
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

	html, err := RenderHTML(design, scene, set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, "<title>Test Outfit</title>") {
		t.Error("design name should title the document")
	}
	if !strings.Contains(html, `id="stage"`) {
		t.Error("stage container missing")
	}
	// The template must not mangle the sprite data URIs.
	if strings.Contains(html, "ZgotmplZ") {
		t.Error("data URIs were rewritten by the template engine")
	}
	// The attribute escaper entity-encodes "+" in URL values, so undo that
	// before counting embedded sprites.
	unescaped := strings.ReplaceAll(html, "&#43;", "+")
	if got := strings.Count(unescaped, "data:image/svg+xml"); got < len(scene.Layers) {
		t.Errorf("expected at least %d embedded sprites, found %d", len(scene.Layers), got)
	}
}
