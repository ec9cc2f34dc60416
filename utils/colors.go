package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// hexColorRegex matches CSS hex colors in short (#abc) or long (#aabbcc) form.
var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// IsHexColor reports whether the value is a well-formed CSS hex color.
func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// ParseHexColor converts a CSS hex color to its RGB components.
// Accepts both "#aabbcc" and the short "#abc" form, with or without the
// leading hash. Returns a descriptive error for malformed values.
func ParseHexColor(value string) (r, g, b uint8, err error) {
	trimmed := strings.TrimSpace(value)
	if !hexColorRegex.MatchString(trimmed) {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q: expected #rgb or #rrggbb", value)
	}

	h := strings.TrimPrefix(trimmed, "#")
	if len(h) == 3 {
		// Expand the short form: #abc -> #aabbcc
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}

	var rv, gv, bv int
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q: %w", value, err)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}

// ToTSHex renders a CSS hex color as the TypeScript-style numeric literal
// used by outfit definitions (e.g. "#F8C574" -> "0xf8c574").
func ToTSHex(value string) (string, error) {
	r, g, b, err := ParseHexColor(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0x%02x%02x%02x", r, g, b), nil
}

// NormalizeHex returns the canonical lowercase "#rrggbb"-style form of a hex
// color, adding the leading hash when absent. Malformed values pass through
// unchanged so the caller's validation error can name the original input.
func NormalizeHex(value string) string {
	trimmed := strings.TrimSpace(value)
	if !hexColorRegex.MatchString(trimmed) {
		return value
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	return strings.ToLower(trimmed)
}

// ClampByte clamps a floating-point channel to the 0-255 byte range.
func ClampByte(value float64) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value + 0.5)
}

// Lighten moves a hex color towards white by the provided amount (0-1).
func Lighten(value string, amount float64) string {
	r, g, b, err := ParseHexColor(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("#%02x%02x%02x",
		ClampByte(float64(r)+(255-float64(r))*amount),
		ClampByte(float64(g)+(255-float64(g))*amount),
		ClampByte(float64(b)+(255-float64(b))*amount))
}

// Darken moves a hex color towards black by the provided amount (0-1).
func Darken(value string, amount float64) string {
	r, g, b, err := ParseHexColor(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("#%02x%02x%02x",
		ClampByte(float64(r)*(1-amount)),
		ClampByte(float64(g)*(1-amount)),
		ClampByte(float64(b)*(1-amount)))
}
