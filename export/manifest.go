package export

import (
	"encoding/json"
	"fmt"

	"survev-skin-studio/models"
)

// spriteMode records how the exported sprites were produced. Uploaded art is
// out of scope for the service, so every bundle is currently generated.
const SpriteModeGenerated = "generated"

// Manifest is the machine-readable description of an exported outfit. It
// mirrors the facts in the snippet so tooling can consume them without
// parsing TypeScript.
type Manifest struct {
	SchemaVersion string           `json:"schemaVersion"`
	Skin          ManifestSkin     `json:"skin"`
	Sprites       ManifestSprites  `json:"sprites"`
	Tints         ManifestTints    `json:"tints"`
	Loot          ManifestLoot     `json:"loot"`
	Preview       ManifestPreview  `json:"preview"`
	Front         ManifestFront    `json:"front"`
}

type ManifestSkin struct {
	Ident        string        `json:"ident"`
	Name         string        `json:"name"`
	Lore         string        `json:"lore,omitempty"`
	Rarity       string        `json:"rarity,omitempty"`
	Flags        ManifestFlags `json:"flags"`
	ObstacleType string        `json:"obstacleType,omitempty"`
	BaseScale    float64       `json:"baseScale"`
}

type ManifestFlags struct {
	NoDropOnDeath bool `json:"noDropOnDeath"`
	NoDrop        bool `json:"noDrop"`
	Ghillie       bool `json:"ghillie"`
}

type ManifestSprites struct {
	Mode               string            `json:"mode"`
	ReferenceExtension string            `json:"referenceExtension"`
	Files              map[string]string `json:"files"`
}

type ManifestTints struct {
	UI     map[string]string `json:"ui"`     // CSS hex values as edited
	Export map[string]string `json:"export"` // TypeScript hex literals
}

type ManifestLoot struct {
	BorderEnabled bool    `json:"borderEnabled"`
	BorderSprite  string  `json:"borderSprite,omitempty"`
	BorderTint    string  `json:"borderTint,omitempty"`
	Scale         float64 `json:"scale"`
	SoundPickup   string  `json:"soundPickup,omitempty"`
}

type ManifestPreview struct {
	Preset         string `json:"preset"`
	OverlayEnabled bool   `json:"overlayEnabled"`
}

type ManifestFront struct {
	Enabled   bool         `json:"enabled"`
	SpriteID  string       `json:"spriteId,omitempty"`
	Pos       ManifestPos  `json:"pos"`
	Rotation  float64      `json:"rotation"`
	Scale     float64      `json:"scale"`
	AboveHand bool         `json:"aboveHand"`
}

type ManifestPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BuildManifest assembles the manifest for a design.
func BuildManifest(design *models.OutfitDesign, ident, schemaVersion string, files Filenames, uiTints, tsTints map[string]string) *Manifest {
	return &Manifest{
		SchemaVersion: schemaVersion,
		Skin: ManifestSkin{
			Ident:        ident,
			Name:         design.Name,
			Lore:         design.Lore,
			Rarity:       design.Rarity,
			ObstacleType: design.ObstacleType,
			BaseScale:    design.BaseScale,
			Flags: ManifestFlags{
				NoDropOnDeath: design.NoDropOnDeath,
				NoDrop:        design.NoDrop,
				Ghillie:       design.Ghillie,
			},
		},
		Sprites: ManifestSprites{
			Mode:               SpriteModeGenerated,
			ReferenceExtension: design.RefExt,
			Files:              files,
		},
		Tints: ManifestTints{
			UI:     uiTints,
			Export: tsTints,
		},
		Loot: ManifestLoot{
			BorderEnabled: design.LootBorderOn,
			BorderSprite:  files["border"],
			BorderTint:    tsTints["border"],
			Scale:         design.LootScale,
			SoundPickup:   design.SoundPickup,
		},
		Preview: ManifestPreview{
			Preset:         design.Preset,
			OverlayEnabled: design.OverlayEnabled,
		},
		Front: ManifestFront{
			Enabled:   design.Accessory.Enabled,
			SpriteID:  design.Accessory.SpriteID,
			Pos:       ManifestPos{X: design.Accessory.OffsetX, Y: design.Accessory.OffsetY},
			Rotation:  design.Accessory.Rotation,
			Scale:     design.Accessory.Scale,
			AboveHand: design.Accessory.AboveHand,
		},
	}
}

// Encode renders the manifest as indented JSON.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return data, nil
}
