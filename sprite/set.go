package sprite

import (
	"fmt"

	"survev-skin-studio/models"
)

// Set is the resolved sprite set of one design: every asset needed to preview
// and export it, keyed by slot name.
type Set struct {
	Body      models.SpriteAsset
	Hands     models.SpriteAsset
	Feet      models.SpriteAsset
	Backpack  models.SpriteAsset
	Loot      models.SpriteAsset
	LootInner models.SpriteAsset
	LootOuter models.SpriteAsset
	Overlay   models.SpriteAsset
}

// BuildSet renders the full sprite set for a design. Each part is generated
// from its own fill settings; the loot circle pair derives from the loot tint
// and border tint the way the in-game loadout screen colors them.
func BuildSet(design *models.OutfitDesign) (*Set, error) {
	set := &Set{}

	body, err := BuildPart(PartBody, design.Body, design.StrokeColor, design.StrokeWidth, design.OutlineStyle)
	if err != nil {
		return nil, err
	}
	set.Body = body

	hands, err := BuildPart(PartHands, design.Hands, design.StrokeColor, design.StrokeWidth, design.OutlineStyle)
	if err != nil {
		return nil, err
	}
	set.Hands = hands

	feet, err := BuildPart(PartFeet, design.Feet, design.StrokeColor, design.StrokeWidth, design.OutlineStyle)
	if err != nil {
		return nil, err
	}
	set.Feet = feet

	backpack, err := BuildPart(PartBackpack, design.Backpack, design.StrokeColor, design.StrokeWidth, design.OutlineStyle)
	if err != nil {
		return nil, err
	}
	set.Backpack = backpack

	loot, err := LootShirtAsset(design.LootTint)
	if err != nil {
		return nil, fmt.Errorf("failed to build loot icon: %w", err)
	}
	set.Loot = loot

	set.LootInner = LootCircleInnerAsset(design.LootTint)
	borderTint := design.LootBorderTint
	if borderTint == "" {
		borderTint = "#000000"
	}
	set.LootOuter = LootCircleOuterAsset(borderTint)
	set.Overlay = OverlayAsset()

	return set, nil
}
