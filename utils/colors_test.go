package utils

import "testing"

func TestIsHexColor(t *testing.T) {
	valid := []string{"#f8c574", "f8c574", "#ABC", "abc", " #816537 "}
	for _, v := range valid {
		if !IsHexColor(v) {
			t.Errorf("IsHexColor(%q) = false, expected true", v)
		}
	}

	invalid := []string{"", "#12345", "#gggggg", "red", "#f8c5744"}
	for _, v := range invalid {
		if IsHexColor(v) {
			t.Errorf("IsHexColor(%q) = true, expected false", v)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b, err := ParseHexColor("#f8c574")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 0xf8 || g != 0xc5 || b != 0x74 {
		t.Errorf("got (%d, %d, %d), expected (248, 197, 116)", r, g, b)
	}
}

func TestParseHexColorShortForm(t *testing.T) {
	r, g, b, err := ParseHexColor("#fa3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 0xff || g != 0xaa || b != 0x33 {
		t.Errorf("got (%d, %d, %d), expected short form expanded to (255, 170, 51)", r, g, b)
	}
}

func TestParseHexColorMalformed(t *testing.T) {
	for _, v := range []string{"", "#12", "nope", "#f8c57g"} {
		if _, _, _, err := ParseHexColor(v); err == nil {
			t.Errorf("ParseHexColor(%q) should have failed", v)
		}
	}
}

func TestToTSHex(t *testing.T) {
	ts, err := ToTSHex("#F8C574")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts != "0xf8c574" {
		t.Errorf("got %q, expected %q", ts, "0xf8c574")
	}

	if _, err := ToTSHex("#12345"); err == nil {
		t.Error("expected error for malformed hex")
	}
}

func TestNormalizeHex(t *testing.T) {
	cases := map[string]string{
		"AABBCC":    "#aabbcc",
		"#AABBCC":   "#aabbcc",
		" #f8c574 ": "#f8c574",
		"fa3":       "#fa3",
	}
	for in, want := range cases {
		if got := NormalizeHex(in); got != want {
			t.Errorf("NormalizeHex(%q) = %q, expected %q", in, got, want)
		}
	}

	if got := NormalizeHex("not-a-color"); got != "not-a-color" {
		t.Errorf("malformed input should pass through unchanged, got %q", got)
	}
}

func TestLighten(t *testing.T) {
	if got := Lighten("#000000", 1.0); got != "#ffffff" {
		t.Errorf("full lighten of black: got %q, expected #ffffff", got)
	}
	if got := Lighten("#808080", 0.5); got != "#c0c0c0" {
		t.Errorf("half lighten of grey: got %q, expected #c0c0c0", got)
	}
	if got := Lighten("#f8c574", 0); got != "#f8c574" {
		t.Errorf("zero lighten should preserve the color, got %q", got)
	}
}

func TestDarken(t *testing.T) {
	if got := Darken("#ffffff", 1.0); got != "#000000" {
		t.Errorf("full darken of white: got %q, expected #000000", got)
	}
	if got := Darken("#808080", 0.5); got != "#404040" {
		t.Errorf("half darken of grey: got %q, expected #404040", got)
	}
}

func TestLightenMalformedPassesThrough(t *testing.T) {
	if got := Lighten("not-a-color", 0.5); got != "not-a-color" {
		t.Errorf("malformed input should pass through unchanged, got %q", got)
	}
}
