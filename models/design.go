package models

// FillStyle selects how a body part's fill is generated.
type FillStyle string

const (
	FillSolid             FillStyle = "Solid"
	FillLinearGradient    FillStyle = "Linear Gradient"
	FillRadialGradient    FillStyle = "Radial Gradient"
	FillDiagonalStripes   FillStyle = "Diagonal Stripes"
	FillHorizontalStripes FillStyle = "Horizontal Stripes"
	FillVerticalStripes   FillStyle = "Vertical Stripes"
	FillCrosshatch        FillStyle = "Crosshatch"
	FillDots              FillStyle = "Dots"
	FillChecker           FillStyle = "Checker"
)

// OutlineStyle selects how sprite outlines are stroked.
type OutlineStyle string

const (
	OutlineSolid    OutlineStyle = "Solid"
	OutlineGlow     OutlineStyle = "Glow"
	OutlineGradient OutlineStyle = "Gradient"
	OutlineDashed   OutlineStyle = "Dashed"
	OutlineDouble   OutlineStyle = "Double Stroke"
)

// PartConfig holds the fill settings for a single body part sprite.
type PartConfig struct {
	Primary   string    `json:"primary"`   // base fill color (hex)
	Secondary string    `json:"secondary"` // gradient/checker counterpart (hex)
	Extra     string    `json:"extra"`     // pattern accent color (hex)
	Style     FillStyle `json:"style"`
	Angle     int       `json:"angle"`
	Gap       int       `json:"gap"`
	Opacity   float64   `json:"opacity"`
	Size      int       `json:"size"`
	Tint      string    `json:"tint"` // tint exported to the OutfitDef (hex)

	// Hands-only shape controls.
	Shape       string  `json:"shape,omitempty"`
	ShapeScaleX float64 `json:"shapeScaleX,omitempty"`
	ShapeScaleY float64 `json:"shapeScaleY,omitempty"`
}

// AccessoryConfig describes the optional "front" sprite layered over the body.
type AccessoryConfig struct {
	Enabled   bool    `json:"enabled"`
	SpriteID  string  `json:"spriteId"` // reference into the sprite registry
	OffsetX   float64 `json:"offsetX"`
	OffsetY   float64 `json:"offsetY"`
	Rotation  float64 `json:"rotation"` // degrees
	Scale     float64 `json:"scale"`
	AboveHand bool    `json:"aboveHand"` // render above the hand layer
}

// OutfitDesign is the full working state of one editing session.
// It lives in memory only; nothing is persisted between runs unless exported.
type OutfitDesign struct {
	SessionID string `json:"sessionId"`

	Ident string `json:"ident"` // outfit identifier embedded in filenames
	Name  string `json:"name"`  // display name
	Lore  string `json:"lore"`

	Rarity        string  `json:"rarity,omitempty"` // schema constant, e.g. "Rarity.Rare"
	NoDropOnDeath bool    `json:"noDropOnDeath"`
	NoDrop        bool    `json:"noDrop"`
	Ghillie       bool    `json:"ghillie"`
	ObstacleType  string  `json:"obstacleType,omitempty"`
	BaseScale     float64 `json:"baseScale"`

	Body     PartConfig `json:"body"`
	Hands    PartConfig `json:"hands"`
	Feet     PartConfig `json:"feet"`
	Backpack PartConfig `json:"backpack"`

	LootTint       string  `json:"lootTint"`
	LootBorderOn   bool    `json:"lootBorderOn"`
	LootBorderName string  `json:"lootBorderName,omitempty"`
	LootBorderTint string  `json:"lootBorderTint,omitempty"`
	LootScale      float64 `json:"lootScale"`

	SoundPickup string `json:"soundPickup,omitempty"`
	RefExt      string `json:"refExt"` // reference extension in the TS snippet: ".img" or ".svg"

	StrokeColor  string       `json:"strokeColor"`
	StrokeWidth  float64      `json:"strokeWidth"`
	OutlineStyle OutlineStyle `json:"outlineStyle"`

	Accessory      AccessoryConfig `json:"accessory"`
	Preset         string          `json:"preset"`
	OverlayEnabled bool            `json:"overlayEnabled"` // armor ring + helmet overlay in previews
}

// Tints collects the per-part tint hex values of a design.
// Keys follow the OutfitDef slots: base, hand, foot, backpack, loot, border.
func (d *OutfitDesign) Tints() map[string]string {
	tints := map[string]string{
		"base":     d.Body.Tint,
		"hand":     d.Hands.Tint,
		"foot":     d.Feet.Tint,
		"backpack": d.Backpack.Tint,
		"loot":     d.LootTint,
	}
	if d.LootBorderOn && d.LootBorderTint != "" {
		tints["border"] = d.LootBorderTint
	}
	return tints
}
