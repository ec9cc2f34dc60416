package utils

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"camoFox", "camoFox"},
		{"camo fox!", "camofox"},
		{"  desert-07  ", "desert07"},
		{"", "Custom"},
		{"!!!", "Custom"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.out {
			t.Errorf("Sanitize(%q) = %q, expected %q", c.in, got, c.out)
		}
	}
}

func TestEnsureExtension(t *testing.T) {
	if got := EnsureExtension("loot-circle-outer-01", "img"); got != "loot-circle-outer-01.img" {
		t.Errorf("got %q", got)
	}
	if got := EnsureExtension("border.svg", "img"); got != "border.img" {
		t.Errorf("extension should be replaced, got %q", got)
	}
	if got := EnsureExtension("border.img", "img"); got != "border.img" {
		t.Errorf("matching extension should be untouched, got %q", got)
	}
	if got := EnsureExtension("", "img"); got != "" {
		t.Errorf("empty name should stay empty, got %q", got)
	}
}

func TestApplyPrefix(t *testing.T) {
	if got := ApplyPrefix("export", "manifest.json"); got != "export/manifest.json" {
		t.Errorf("got %q", got)
	}
	if got := ApplyPrefix("export", "nested/manifest.json"); got != "nested/manifest.json" {
		t.Errorf("existing directory should win, got %q", got)
	}
	if got := ApplyPrefix("", "manifest.json"); got != "manifest.json" {
		t.Errorf("empty prefix should be a no-op, got %q", got)
	}
}

func TestSVGDataURI(t *testing.T) {
	uri := SVGDataURI(`<svg><rect fill="#fff"/></svg>`)
	if !strings.HasPrefix(uri, "data:image/svg+xml;utf8,") {
		t.Fatalf("unexpected prefix: %q", uri)
	}
	if strings.Contains(uri, `"`) {
		t.Error("quotes must be escaped inside the data URI")
	}
}
