// Package preview arranges a design's sprites into the fixed poses shown by
// the editor (Loadout, Standing, Knocked) and renders them as an HTML scene.
package preview

// Layout describes the stage geometry of one preview pose. All coordinates
// are CSS pixels inside the stage. HandTop and FeetTop of 0 mean "derive from
// the body position".
type Layout struct {
	StageWidth  int
	StageHeight int

	BodySize       int
	BodyTop        int
	BodyLeftOffset int
	BodyRotation   float64

	HandSize          int
	HandOffsetX       int
	HandOffsetY       int
	HandTop           int
	HandRotationLeft  float64
	HandRotationRight float64
	RightHandMirror   bool
	HandsAboveBody    bool

	BackpackSize    int
	BackpackTop     int
	BackpackOffsetX int
	ShowBackpack    bool

	OverlaySize      int
	OverlayOffsetX   int
	OverlayOffsetY   int
	OverlayAboveBody bool
	ShowOverlay      bool

	ShowFeet          bool
	FeetSize          int
	FeetOffsetX       int
	FeetOffsetY       int
	FeetTop           int
	FeetRotationLeft  float64
	FeetRotationRight float64
	RightFootMirror   bool
	FeetAboveBody     bool
}

// DefaultLayout returns the base stage geometry the presets are tuned from.
func DefaultLayout() Layout {
	return Layout{
		StageWidth:       420,
		StageHeight:      480,
		BodySize:         134,
		BodyTop:          190,
		HandSize:         52,
		HandOffsetX:      32,
		HandOffsetY:      34,
		RightHandMirror:  true,
		HandsAboveBody:   true,
		BackpackSize:     148,
		BackpackTop:      110,
		ShowBackpack:     true,
		OverlaySize:      160,
		OverlayAboveBody: true,
		ShowOverlay:      true,
		FeetSize:         38,
		FeetOffsetX:      28,
		FeetOffsetY:      12,
		RightFootMirror:  true,
		FeetAboveBody:    true,
	}
}

// Frame is the resolved position of one stage element.
type Frame struct {
	Left     int
	Top      int
	Width    int
	Height   int
	Rotation float64
}

// BodyFrame resolves the body's stage frame from the layout.
func (l Layout) BodyFrame() Frame {
	return Frame{
		Left:     (l.StageWidth-l.BodySize)/2 + l.BodyLeftOffset,
		Top:      l.BodyTop,
		Width:    l.BodySize,
		Height:   l.BodySize,
		Rotation: l.BodyRotation,
	}
}

// HandFrames resolves the left and right hand frames.
func (l Layout) HandFrames() (left, right Frame) {
	bodyLeft := l.BodyFrame().Left
	handLeft := bodyLeft - l.HandOffsetX
	handRight := l.StageWidth - handLeft - l.HandSize
	top := l.HandTop
	if top == 0 {
		top = l.BodyTop + l.BodySize - l.HandOffsetY
	}
	left = Frame{Left: handLeft, Top: top, Width: l.HandSize, Height: l.HandSize, Rotation: l.HandRotationLeft}
	right = Frame{Left: handRight, Top: top, Width: l.HandSize, Height: l.HandSize, Rotation: l.HandRotationRight}
	return left, right
}

// FeetFrames resolves the left and right foot frames.
func (l Layout) FeetFrames() (left, right Frame) {
	bodyLeft := l.BodyFrame().Left
	feetLeft := bodyLeft - l.FeetOffsetX
	feetRight := l.StageWidth - feetLeft - l.FeetSize
	top := l.FeetTop
	if top == 0 {
		top = l.BodyTop + l.BodySize - l.FeetOffsetY
	}
	left = Frame{Left: feetLeft, Top: top, Width: l.FeetSize, Height: l.FeetSize, Rotation: l.FeetRotationLeft}
	right = Frame{Left: feetRight, Top: top, Width: l.FeetSize, Height: l.FeetSize, Rotation: l.FeetRotationRight}
	return left, right
}

// BackpackFrame resolves the backpack frame.
func (l Layout) BackpackFrame() Frame {
	return Frame{
		Left:   (l.StageWidth-l.BackpackSize)/2 + l.BackpackOffsetX,
		Top:    l.BackpackTop,
		Width:  l.BackpackSize,
		Height: l.BackpackSize,
	}
}

// OverlayFrame resolves the armor/helmet overlay frame, centered on the body.
func (l Layout) OverlayFrame() Frame {
	body := l.BodyFrame()
	return Frame{
		Left:   body.Left - (l.OverlaySize-l.BodySize)/2 + l.OverlayOffsetX,
		Top:    l.BodyTop - (l.OverlaySize-l.BodySize)/2 + l.OverlayOffsetY,
		Width:  l.OverlaySize,
		Height: l.OverlaySize,
	}
}
