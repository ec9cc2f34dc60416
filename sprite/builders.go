package sprite

import (
	"fmt"
	"strings"

	"survev-skin-studio/models"
	"survev-skin-studio/utils"
)

// Part identifies one of the recolorable outfit body parts.
type Part string

const (
	PartBody     Part = "body"
	PartHands    Part = "hands"
	PartFeet     Part = "feet"
	PartBackpack Part = "backpack"
)

// Asset identifiers of the generated sprites, matching the in-game sheet names.
const (
	BodyID      = "player-base"
	HandsID     = "player-hands"
	FeetID      = "player-feet"
	BackpackID  = "player-circle-base"
	LootShirtID = "loot-shirt"
)

// Hand shape names accepted by HandsAsset.
const (
	ShapeCircle        = "Circle"
	ShapeRoundedSquare = "Rounded Square"
	ShapeDiamond       = "Diamond"
	ShapeTeardrop      = "Teardrop"
)

// Canvas sizes per part, matching the in-game sprite sheets.
const (
	bodySize     = 140.0
	handsSize    = 76.0
	feetSize     = 38.0
	backpackSize = 148.0
	lootSize     = 128.0
	overlaySize  = 160.0
	frontSize    = 180.0
)

// BuildPart generates the SVG asset for one body part from its fill settings.
// The produced shape carries an id matching the part name so the recolor
// engine can later retint it without touching any other markup.
func BuildPart(part Part, cfg models.PartConfig, strokeColor string, strokeWidth float64, style models.OutlineStyle) (models.SpriteAsset, error) {
	fillDefs, fillRef, err := BuildFill(cfg)
	if err != nil {
		return models.SpriteAsset{}, fmt.Errorf("failed to build %s fill: %w", part, err)
	}

	switch part {
	case PartBody:
		return BodyAsset(fillDefs, fillRef), nil
	case PartHands:
		return HandsAsset(fillDefs, fillRef, cfg, strokeColor, strokeWidth, style), nil
	case PartFeet:
		return FeetAsset(fillDefs, fillRef, strokeColor, strokeWidth, style), nil
	case PartBackpack:
		return BackpackAsset(fillDefs, fillRef, strokeColor, strokeWidth, style), nil
	default:
		return models.SpriteAsset{}, fmt.Errorf("unknown body part %q", part)
	}
}

// BodyAsset builds the strokeless body ellipse.
func BodyAsset(fillDefs, fillRef string) models.SpriteAsset {
	parts := []string{Header(bodySize, bodySize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	parts = append(parts, fmt.Sprintf(`<ellipse id="body" cx="70" cy="70" rx="66" ry="66" fill="%s" />`, fillRef))
	parts = append(parts, Footer())
	return models.SpriteAsset{
		ID:          BodyID,
		Width:       bodySize,
		Height:      bodySize,
		Markup:      strings.Join(parts, "\n"),
		FillRegions: []string{"body"},
	}
}

// HandsAsset builds the hand sprite in the configured shape.
func HandsAsset(fillDefs, fillRef string, cfg models.PartConfig, strokeColor string, strokeWidth float64, style models.OutlineStyle) models.SpriteAsset {
	if strokeColor == "" {
		strokeColor = "#333333"
	}
	if strokeWidth <= 0 {
		strokeWidth = 11.096
	}
	defs, strokeAttrs, outer := outlineParts(style, strokeColor, strokeWidth, "hands")

	parts := []string{Header(handsSize, handsSize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	if defs != "" {
		parts = append(parts, defs)
	}

	scaleX := cfg.ShapeScaleX
	scaleY := cfg.ShapeScaleY
	if scaleX <= 0 {
		scaleX = 1.0
	}
	if scaleY <= 0 {
		scaleY = 1.0
	}
	const cx, cy = 38.0, 38.0
	if strokeAttrs == "" {
		strokeAttrs = Outline(strokeColor, strokeWidth)
	}

	switch cfg.Shape {
	case ShapeRoundedSquare:
		size := 48 * scaleX
		radius := 12 * scaleY
		x := cx - size/2
		y := cy - size/2
		if outer != "" {
			parts = append(parts, fmt.Sprintf(
				`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="none" %s />`,
				x, y, size, size, radius, radius, outer))
		}
		parts = append(parts, fmt.Sprintf(
			`<rect id="hands" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="%s" %s />`,
			x, y, size, size, radius, radius, fillRef, strokeAttrs))
	case ShapeDiamond:
		halfW := 28 * scaleX
		halfH := 32 * scaleY
		points := fmt.Sprintf("%.2f,%.2f %.2f,%.2f %.2f,%.2f %.2f,%.2f",
			cx, cy-halfH, cx+halfW, cy, cx, cy+halfH, cx-halfW, cy)
		if outer != "" {
			parts = append(parts, fmt.Sprintf(`<polygon points="%s" fill="none" %s />`, points, outer))
		}
		parts = append(parts, fmt.Sprintf(`<polygon id="hands" points="%s" fill="%s" %s />`, points, fillRef, strokeAttrs))
	case ShapeTeardrop:
		radius := 30 * scaleX
		if scaleY < scaleX {
			radius = 30 * scaleY
		}
		tipOffset := 26 * scaleY
		path := fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 1 1 %.2f %.2f L %.2f %.2f Z",
			cx-radius, cy, radius, radius, cx+radius, cy, cx, cy+tipOffset)
		if outer != "" {
			parts = append(parts, fmt.Sprintf(`<path d="%s" fill="none" %s />`, path, outer))
		}
		parts = append(parts, fmt.Sprintf(`<path id="hands" d="%s" fill="%s" %s />`, path, fillRef, strokeAttrs))
	default: // Circle
		rx := 30.4 * scaleX
		ry := 30.4 * scaleY
		if outer != "" {
			parts = append(parts, fmt.Sprintf(`<ellipse cx="38" cy="38" rx="%.2f" ry="%.2f" fill="none" %s />`, rx, ry, outer))
		}
		parts = append(parts, fmt.Sprintf(`<ellipse id="hands" cx="38" cy="38" rx="%.2f" ry="%.2f" fill="%s" %s />`, rx, ry, fillRef, strokeAttrs))
	}

	parts = append(parts, Footer())
	return models.SpriteAsset{
		ID:          HandsID,
		Width:       handsSize,
		Height:      handsSize,
		Markup:      strings.Join(parts, "\n"),
		FillRegions: []string{"hands"},
	}
}

// FeetAsset builds the foot sprite shown in the knocked pose.
func FeetAsset(fillDefs, fillRef string, strokeColor string, strokeWidth float64, style models.OutlineStyle) models.SpriteAsset {
	if strokeColor == "" {
		strokeColor = "#333333"
	}
	if strokeWidth <= 0 {
		strokeWidth = 4.513
	}
	defs, strokeAttrs, outer := outlineParts(style, strokeColor, strokeWidth, "feet")

	parts := []string{Header(feetSize, feetSize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	if defs != "" {
		parts = append(parts, defs)
	}
	if outer != "" {
		parts = append(parts, fmt.Sprintf(`<ellipse cx="19" cy="19" rx="15.7" ry="9.8" fill="none" %s />`, outer))
	}
	if strokeAttrs == "" {
		strokeAttrs = Outline(strokeColor, strokeWidth)
	}
	parts = append(parts, fmt.Sprintf(`<ellipse id="feet" cx="19" cy="19" rx="15.7" ry="9.8" fill="%s" %s />`, fillRef, strokeAttrs))
	parts = append(parts, Footer())
	return models.SpriteAsset{
		ID:          FeetID,
		Width:       feetSize,
		Height:      feetSize,
		Markup:      strings.Join(parts, "\n"),
		FillRegions: []string{"feet"},
	}
}

// BackpackAsset builds the backpack circle rendered behind the body.
func BackpackAsset(fillDefs, fillRef string, strokeColor string, strokeWidth float64, style models.OutlineStyle) models.SpriteAsset {
	if strokeColor == "" {
		strokeColor = "#333333"
	}
	if strokeWidth <= 0 {
		strokeWidth = 11.014
	}
	defs, strokeAttrs, outer := outlineParts(style, strokeColor, strokeWidth, "backpack")

	parts := []string{Header(backpackSize, backpackSize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	if defs != "" {
		parts = append(parts, defs)
	}
	if outer != "" {
		parts = append(parts, fmt.Sprintf(`<ellipse cx="74" cy="74" rx="66.5" ry="66.5" fill="none" %s />`, outer))
	}
	if strokeAttrs == "" {
		strokeAttrs = Outline(strokeColor, strokeWidth)
	}
	parts = append(parts, fmt.Sprintf(`<ellipse id="backpack" cx="74" cy="74" rx="66.5" ry="66.5" fill="%s" %s />`, fillRef, strokeAttrs))
	parts = append(parts, Footer())
	return models.SpriteAsset{
		ID:          BackpackID,
		Width:       backpackSize,
		Height:      backpackSize,
		Markup:      strings.Join(parts, "\n"),
		FillRegions: []string{"backpack"},
	}
}

// lootShirtPath is the exact silhouette used by the stock loot-shirt sprite;
// only its fill changes with the chosen tint.
const lootShirtPath = "M63.993 8.15c-10.38 0-22.796 3.526-30.355 7.22-8.038 3.266-14.581 7.287-19.253 14.509C8.102 " +
	"39.594 5.051 54.6 7.13 78.482c5.964 2.07 11.333 1.45 16.842-.415-1.727-7.884-1.448-15.764.496-22.204 " +
	"2.126-7.044 6.404-12.722 12.675-13.701l2.77-.432.074 2.803c.054 2.043.09 4.17.116 6.335l.027 " +
	"6.312c-.037 8.798-.382 18.286-1.277 27.845 5.637 1.831 14.806 2.954 23.964 3.019l4.597-.058c8.53-.275 " +
	"16.742-1.449 21.665-3.063-1.093-14.65-1.166-29.434-1.52-41.334l-.097-3.283 3.18.824c6.238 1.617 " +
	"10.55 7.376 12.76 14.507 2.02 6.51 2.353 14.37.64 22.248a29.764 29.764 0 0 0 12.847 1.181l4.399-.588c1.033-18.811-1.433" +
	"-37.403-6.27-46.264l-4.408-6.376c-4.647-5.357-10.62-8.399-17.665-11.074-6.746-3.458-18.358-6.614-28.95-6.614zm0 3.05c6.494 0 13." +
	"37 1.942 19.274 4.516-3.123 2.758-6.971 4.665-11.067 5.754l-7.852 17.31-6.838-16.882c-4.757-.93-9.26-2.957-12.783-6.174C50.9 13." +
	"081 57.809 11.2 63.993 11.2zm.58 28.539l3.512 5.327-3.497 5.053-3.53-5.053zm0 11.888l3.512 5.328-3.497 5.052-3.53-5.053 3.514-5." +
	"327zm0 11.733l3.512 5.327-3.497 5.054-3.53-5.054zm0 11.876l3.512 5.327-3.497 5.054-3.53-5.053 3.514-5.327zm25.079 13.715c-6.61 2" +
	".055-15.829 2.907-25.277 2.951-9.5.045-18.965-.744-25.902-2.892-.205 1.785-.43 3.569-.678 5.347 5.968 2.132 16.346 3.408 26.497" +
	"3.36 10.143-.05 20.355-1.444 25.912-3.433a241.302 241.302 0 0 1-.552-5.333zm1.368 9.086c-6.782 2.308-16.533 3.262-26.53 3.31-2.9" +
	"35.015-5.866-.052-8.724-.213l-4.227-.315c-5.358-.5-10.307-1.382-14.329-2.758-.897 5.43-2.02 10.772-3.413 15.903 2.117 1.06 4.41" +
	"1.968 6.835 2.733l3.97 1.096c15.85 3.805 35.88 2.156 49.601-3.513-1.355-5.09-2.387-10.57-3.183-16.243z"

// LootShirtAsset builds the loot icon silhouette with the provided tint.
func LootShirtAsset(tintHex string) (models.SpriteAsset, error) {
	if !utils.IsHexColor(tintHex) {
		return models.SpriteAsset{}, fmt.Errorf("invalid loot tint %q", tintHex)
	}
	parts := []string{
		Header(lootSize, lootSize),
		fmt.Sprintf(`<path id="loot" d="%s" fill="%s"/>`, lootShirtPath, tintHex),
		Footer(),
	}
	return models.SpriteAsset{
		ID:          LootShirtID,
		Width:       lootSize,
		Height:      lootSize,
		Markup:      strings.Join(parts, "\n"),
		FillRegions: []string{"loot"},
	}, nil
}

// LootCircleInnerAsset builds the radial glow behind the loot icon.
func LootCircleInnerAsset(baseHex string) models.SpriteAsset {
	highlight := utils.Lighten(baseHex, 0.25)
	fade := utils.Darken(baseHex, 0.65)
	parts := []string{
		Header(148, 148),
		`<defs>` +
			`<radialGradient id="lootInner" cx="50%" cy="50%" r="50%" gradientUnits="userSpaceOnUse">` +
			fmt.Sprintf(`<stop offset="0%%" stop-color="%s" stop-opacity="1"/>`, highlight) +
			fmt.Sprintf(`<stop offset="100%%" stop-color="%s" stop-opacity="0"/>`, fade) +
			`</radialGradient>` +
			`</defs>`,
		`<ellipse cx="74" cy="74" rx="68.861" ry="68.769" fill="url(#lootInner)" />`,
		Footer(),
	}
	return models.SpriteAsset{
		ID:     "loot-circle-inner",
		Width:  148,
		Height: 148,
		Markup: strings.Join(parts, "\n"),
	}
}

// LootCircleOuterAsset builds the loot border ring.
func LootCircleOuterAsset(strokeHex string) models.SpriteAsset {
	fillCol := utils.Lighten(strokeHex, 0.6)
	parts := []string{
		Header(146, 146),
		fmt.Sprintf(`<ellipse cx="73" cy="73" rx="68.861" ry="68.769" fill="%s" `+
			`fill-opacity="0.27" stroke="%s" stroke-width="6.21" stroke-opacity="0.77" />`, fillCol, strokeHex),
		Footer(),
	}
	return models.SpriteAsset{
		ID:     "loot-circle-outer",
		Width:  146,
		Height: 146,
		Markup: strings.Join(parts, "\n"),
	}
}

// OverlayAsset builds the preview-only armor ring and helmet accent.
func OverlayAsset() models.SpriteAsset {
	const center = overlaySize / 2
	parts := []string{
		Header(overlaySize, overlaySize),
		fmt.Sprintf(`<circle cx="%s" cy="%s" r="70" fill="none" stroke="#20160a" stroke-width="12" />`,
			trimFloat(center), trimFloat(center)),
		fmt.Sprintf(`<circle cx="%s" cy="%s" r="40" fill="#3c7fda" stroke="#174173" stroke-width="8" />`,
			trimFloat(center), trimFloat(center-22)),
		Footer(),
	}
	return models.SpriteAsset{
		ID:     "overlay-armor",
		Width:  overlaySize,
		Height: overlaySize,
		Markup: strings.Join(parts, "\n"),
	}
}

// AccessoryAsset generates a layered-ellipse accessory sprite. The two base
// circles share one fill via the grouped accessory region; the highlight cap
// keeps its own accent color.
func AccessoryAsset(id string, fillDefs, fillRef, highlight string, flareScale, tipScale float64) models.SpriteAsset {
	const center = frontSize / 2
	const baseRadius = 72.0
	if flareScale <= 0 {
		flareScale = 1.1
	}
	if tipScale <= 0 {
		tipScale = 0.45
	}
	if highlight == "" {
		highlight = "#ffffff"
	}
	flareRadius := baseRadius * flareScale
	tipRadius := baseRadius * tipScale
	tipOffset := baseRadius * 0.85

	parts := []string{Header(frontSize, frontSize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	parts = append(parts, fmt.Sprintf(`<g id="accessory" fill="%s">`, fillRef))
	parts = append(parts, fmt.Sprintf(`<circle cx="%s" cy="%s" r="%.2f" />`, trimFloat(center), trimFloat(center), flareRadius))
	parts = append(parts, fmt.Sprintf(`<circle cx="%s" cy="%s" r="%.2f" />`, trimFloat(center), trimFloat(center+16), baseRadius))
	parts = append(parts, `</g>`)
	parts = append(parts, fmt.Sprintf(`<circle cx="%s" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.65" />`,
		trimFloat(center), center-tipOffset, tipRadius, highlight))
	parts = append(parts, Footer())
	return models.SpriteAsset{
		ID:          id,
		Width:       frontSize,
		Height:      frontSize,
		Markup:      strings.Join(parts, "\n"),
		FillRegions: []string{"accessory"},
	}
}
