package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"survev-skin-studio/models"
	"survev-skin-studio/utils"
)

// ConstName derives the exported TypeScript constant name from the outfit
// identifier ("camoFox" -> "outfitCamoFox").
func ConstName(ident string) string {
	if ident == "" {
		return "outfit"
	}
	return "outfit" + strings.ToUpper(ident[:1]) + ident[1:]
}

// BuildSnippet renders the typed defineOutfitSkin configuration snippet.
// Optional gameplay flags are emitted only when set, matching the shape of
// the game's outfit definitions. Tints must be the TypeScript hex literals
// produced by utils.ToTSHex.
func BuildSnippet(design *models.OutfitDesign, ident string, files Filenames, tsTints map[string]string) string {
	quote := func(s string) string {
		b, _ := json.Marshal(s)
		return string(b)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf(`export const %s = defineOutfitSkin(%s, {`, ConstName(ident), quote(ident)))
	lines = append(lines, fmt.Sprintf(`  name: %s,`, quote(design.Name)))
	if design.NoDropOnDeath {
		lines = append(lines, `  noDropOnDeath: true,`)
	}
	if design.NoDrop {
		lines = append(lines, `  noDrop: true,`)
	}
	if design.Rarity != "" {
		lines = append(lines, fmt.Sprintf(`  rarity: %s,`, design.Rarity))
	}
	if design.Lore != "" {
		lines = append(lines, fmt.Sprintf(`  lore: %s,`, quote(design.Lore)))
	}
	if design.Ghillie {
		lines = append(lines, `  ghillie: true,`)
	}
	if design.ObstacleType != "" {
		lines = append(lines, fmt.Sprintf(`  obstacleType: %s,`, quote(design.ObstacleType)))
	}
	if design.BaseScale != 0 && design.BaseScale != 1 {
		lines = append(lines, fmt.Sprintf(`  baseScale: %s,`, utils.FormatFloat(design.BaseScale)))
	}

	// Untinted slots are left out of the definition entirely; an empty value
	// after "handTint:" would not be valid TypeScript.
	lines = append(lines, `  skinImg: {`)
	for _, slot := range []struct {
		tintKey, spriteKey, tintField, spriteField string
	}{
		{"base", "base", "baseTint", "baseSprite"},
		{"hand", "hands", "handTint", "handSprite"},
		{"foot", "feet", "footTint", "footSprite"},
		{"backpack", "backpack", "backpackTint", "backpackSprite"},
	} {
		tint := tsTints[slot.tintKey]
		if tint == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(`    %s: %s,`, slot.tintField, tint))
		lines = append(lines, fmt.Sprintf(`    %s: %s,`, slot.spriteField, quote(files[slot.spriteKey])))
	}
	lines = append(lines, `  },`)

	lines = append(lines, `  lootImg: {`)
	lines = append(lines, fmt.Sprintf(`    sprite: %s,`, quote(files["loot"])))
	if tint := tsTints["loot"]; tint != "" {
		lines = append(lines, fmt.Sprintf(`    tint: %s,`, tint))
	}
	if border, ok := files["border"]; ok {
		lines = append(lines, fmt.Sprintf(`    border: %s,`, quote(border)))
		if tint := tsTints["border"]; tint != "" {
			lines = append(lines, fmt.Sprintf(`    borderTint: %s,`, tint))
		}
		lines = append(lines, fmt.Sprintf(`    scale: %s,`, utils.FormatFloat(design.LootScale)))
	}
	lines = append(lines, `  },`)

	if design.SoundPickup != "" {
		lines = append(lines, `  sound: {`)
		lines = append(lines, fmt.Sprintf(`    pickup: %s,`, quote(design.SoundPickup)))
		lines = append(lines, `  },`)
	}

	lines = append(lines, `});`)
	return strings.Join(lines, "\n")
}
