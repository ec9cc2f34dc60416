// Package export serializes a finished design into the artifacts the game
// tooling consumes: per-part SVG sprites, a typed defineOutfitSkin snippet, a
// JSON manifest, an HTML preview snapshot and a combined zip bundle.
package export

import (
	"strings"

	"survev-skin-studio/utils"
)

// Filenames maps sprite slots to the filenames referenced by the snippet and
// manifest. Keys: base, hands, feet, backpack, loot, border (optional).
type Filenames map[string]string

// BuildFilenames derives the exported asset names from the outfit identifier
// using the fixed naming convention. The reference extension is what the
// snippet points at in-game; the bundle always ships SVG files.
func BuildFilenames(ident, refExt string, lootBorderOn bool, lootBorderName string) Filenames {
	ext := "svg"
	if refExt == ".img" {
		ext = "img"
	}

	files := Filenames{
		"base":     "player-base-" + ident + "." + ext,
		"hands":    "player-hands-" + ident + "." + ext,
		"feet":     "player-feet-" + ident + "." + ext,
		"backpack": "player-circle-base-" + ident + "." + ext,
		"loot":     "loot-shirt-" + ident + "." + ext,
	}
	if lootBorderOn && lootBorderName != "" {
		files["border"] = utils.EnsureExtension(lootBorderName, ext)
	}
	return files
}

// DiskName converts a referenced filename to the name used inside the bundle,
// which always contains SVG files regardless of the reference extension.
func DiskName(filename string) string {
	if strings.HasSuffix(filename, ".img") {
		return strings.TrimSuffix(filename, ".img") + ".svg"
	}
	return filename
}
