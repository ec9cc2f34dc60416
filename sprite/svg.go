// Package sprite generates and transforms the SVG fragments that make up a
// Survev.io outfit: body parts, loot icons, accessories and the preview-only
// armor overlay. All operations are pure; assets are never mutated in place.
package sprite

import (
	"fmt"
	"strings"
)

// Header returns the shared SVG opening tag used across generated assets.
func Header(width, height float64) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" `+
		`viewBox="0 0 %s %s" shape-rendering="geometricPrecision" `+
		`text-rendering="geometricPrecision">`,
		trimFloat(width), trimFloat(height), trimFloat(width), trimFloat(height))
}

// Footer returns the closing SVG tag.
func Footer() string {
	return "</svg>"
}

// Outline builds a stroke attribute block for outline-enabled sprites.
// Returns "" when either parameter is unset so strokeless shapes stay clean.
func Outline(stroke string, width float64) string {
	if stroke == "" || width <= 0 {
		return ""
	}
	return fmt.Sprintf(`stroke="%s" stroke-width="%s"`, stroke, trimFloat(width))
}

// trimFloat renders a float without trailing zeros ("66.5", "148").
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// splitMarkup separates an SVG document into its opening tag, inner content
// and closing tag. Used by the transform engine to wrap content in a group.
func splitMarkup(markup string) (header, inner, footer string, err error) {
	open := strings.Index(markup, "<svg")
	if open < 0 {
		return "", "", "", fmt.Errorf("markup has no <svg> root element")
	}
	end := strings.Index(markup[open:], ">")
	if end < 0 {
		return "", "", "", fmt.Errorf("markup has an unterminated <svg> tag")
	}
	close := strings.LastIndex(markup, "</svg>")
	if close < 0 || close < open+end {
		return "", "", "", fmt.Errorf("markup has no closing </svg> tag")
	}
	header = markup[:open+end+1]
	inner = markup[open+end+1 : close]
	footer = markup[close:]
	return header, inner, footer, nil
}
