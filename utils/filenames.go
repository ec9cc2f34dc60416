package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// nonAlnumRegex strips everything that is not safe inside exported asset names.
var nonAlnumRegex = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Sanitize returns a filesystem-safe identifier for export assets.
// Falls back to "Custom" when nothing usable remains.
func Sanitize(name string) string {
	cleaned := nonAlnumRegex.ReplaceAllString(strings.TrimSpace(name), "")
	if cleaned == "" {
		return "Custom"
	}
	return cleaned
}

// EnsureExtension forces a filename to use the provided extension (without dot).
// An empty name stays empty so optional sprite slots remain omitted.
func EnsureExtension(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, "."+ext) {
		return name
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name + "." + ext
}

// ApplyPrefix prepends a directory prefix unless the filename already carries one.
func ApplyPrefix(prefix, filename string) string {
	if strings.Contains(filename, "/") {
		return filename
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return filename
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + filename
}

// SVGDataURI encodes raw SVG text as a data URI for inline previews.
func SVGDataURI(svgText string) string {
	return "data:image/svg+xml;utf8," + url.PathEscape(svgText)
}
