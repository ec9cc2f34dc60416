package preview

import (
	"fmt"

	"survev-skin-studio/models"
	"survev-skin-studio/sprite"
	"survev-skin-studio/utils"
)

// Layer is one positioned sprite in a composed scene. Layers are listed in
// paint order: earlier entries render beneath later ones.
type Layer struct {
	Role      string  `json:"role"`
	SpriteID  string  `json:"spriteId"`
	Left      int     `json:"left"`
	Top       int     `json:"top"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Transform string  `json:"transform"` // CSS transform applied to the layer
	URI       string  `json:"-"`         // sprite markup as a data URI
}

// Scene is the fully composed preview for one preset. Same design + preset
// always yields an identical layer order.
type Scene struct {
	Preset      string  `json:"preset"`
	StageWidth  int     `json:"stageWidth"`
	StageHeight int     `json:"stageHeight"`
	Layers      []Layer `json:"layers"`
}

// cssTransform joins transform parts the way the stage stylesheet expects,
// defaulting to a no-op rotation when nothing applies.
func cssTransform(parts ...string) string {
	var filtered []string
	for _, p := range parts {
		if p != "" {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return "rotate(0deg)"
	}
	out := filtered[0]
	for _, p := range filtered[1:] {
		out += " " + p
	}
	return out
}

func rotateDeg(deg float64) string {
	return fmt.Sprintf("rotate(%sdeg)", trimDeg(deg))
}

func trimDeg(deg float64) string {
	if deg == float64(int(deg)) {
		return fmt.Sprintf("%d", int(deg))
	}
	return fmt.Sprintf("%.2f", deg)
}

// Compose arranges a design's sprite set into the preset's fixed z-order:
// backpack, below-body overlay/feet/hands, body, above-body overlay/feet/
// hands, then the accessory (below or above the hand layer depending on its
// above-hand flag).
func Compose(design *models.OutfitDesign, preset Preset, set *sprite.Set, registry *sprite.Registry) (*Scene, error) {
	layout := preset.Layout
	scene := &Scene{
		Preset:      preset.Name,
		StageWidth:  layout.StageWidth,
		StageHeight: layout.StageHeight,
	}

	layer := func(role string, asset models.SpriteAsset, frame Frame, transform string) Layer {
		return Layer{
			Role:      role,
			SpriteID:  asset.ID,
			Left:      frame.Left,
			Top:       frame.Top,
			Width:     frame.Width,
			Height:    frame.Height,
			Transform: transform,
			URI:       utils.SVGDataURI(asset.Markup),
		}
	}

	handLeft, handRight := layout.HandFrames()
	feetLeft, feetRight := layout.FeetFrames()
	showOverlay := layout.ShowOverlay && design.OverlayEnabled

	handLayers := []Layer{
		layer("hand-left", set.Hands, handLeft, cssTransform(rotateDeg(layout.HandRotationLeft))),
		layer("hand-right", set.Hands, handRight, cssTransform(mirrorX(layout.RightHandMirror), rotateDeg(layout.HandRotationRight))),
	}
	feetLayers := []Layer{
		layer("foot-left", set.Feet, feetLeft, cssTransform(rotateDeg(layout.FeetRotationLeft))),
		layer("foot-right", set.Feet, feetRight, cssTransform(mirrorX(layout.RightFootMirror), rotateDeg(layout.FeetRotationRight))),
	}

	// Accessory layer, if one is referenced.
	var accessoryLayer *Layer
	if design.Accessory.Enabled {
		asset, err := registry.Get(design.Accessory.SpriteID)
		if err != nil {
			return nil, err
		}
		scale := design.Accessory.Scale
		if scale == 0 {
			scale = 1.0
		}
		if scale <= 0 {
			return nil, fmt.Errorf("invalid accessory scale %.4f: must be positive", scale)
		}
		body := layout.BodyFrame()
		w := int(asset.Width * scale)
		h := int(asset.Height * scale)
		frame := Frame{
			Left:   body.Left + body.Width/2 - w/2 + int(design.Accessory.OffsetX),
			Top:    body.Top + body.Height/2 - h/2 + int(design.Accessory.OffsetY),
			Width:  w,
			Height: h,
		}
		l := layer("accessory", asset, frame, cssTransform(rotateDeg(design.Accessory.Rotation)))
		accessoryLayer = &l
	}

	if layout.ShowBackpack {
		scene.Layers = append(scene.Layers, layer("backpack", set.Backpack, layout.BackpackFrame(), ""))
	}
	if showOverlay && !layout.OverlayAboveBody {
		scene.Layers = append(scene.Layers, layer("overlay", set.Overlay, layout.OverlayFrame(), ""))
	}
	if layout.ShowFeet && !layout.FeetAboveBody {
		scene.Layers = append(scene.Layers, feetLayers...)
	}
	if !layout.HandsAboveBody {
		scene.Layers = append(scene.Layers, handLayers...)
	}

	scene.Layers = append(scene.Layers, layer("body", set.Body, layout.BodyFrame(), cssTransform(rotateDeg(layout.BodyRotation))))

	if showOverlay && layout.OverlayAboveBody {
		scene.Layers = append(scene.Layers, layer("overlay", set.Overlay, layout.OverlayFrame(), ""))
	}
	if accessoryLayer != nil && !design.Accessory.AboveHand {
		scene.Layers = append(scene.Layers, *accessoryLayer)
	}
	if layout.ShowFeet && layout.FeetAboveBody {
		scene.Layers = append(scene.Layers, feetLayers...)
	}
	if layout.HandsAboveBody {
		scene.Layers = append(scene.Layers, handLayers...)
	}
	if accessoryLayer != nil && design.Accessory.AboveHand {
		scene.Layers = append(scene.Layers, *accessoryLayer)
	}

	return scene, nil
}

func mirrorX(mirror bool) string {
	if mirror {
		return "scaleX(-1)"
	}
	return ""
}
