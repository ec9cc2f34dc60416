package models

// RecolorRequest asks the Color/Fill engine to retint named fill regions of a
// sprite. Tints maps fill region name to a hex color.
type RecolorRequest struct {
	SpriteID string            `json:"spriteId"`
	Tints    map[string]string `json:"tints"`
}

// TransformRequest asks the transform engine for a repositioned copy of a sprite.
type TransformRequest struct {
	SpriteID string  `json:"spriteId"`
	Rotation float64 `json:"rotation"` // degrees
	Scale    float64 `json:"scale"`    // positive multiplier
	OffsetX  float64 `json:"offsetX"`
	OffsetY  float64 `json:"offsetY"`
}

// SpriteResponse carries transformed or recolored sprite markup back to the client.
type SpriteResponse struct {
	SpriteID string `json:"spriteId"`
	Markup   string `json:"markup"`
	DataURI  string `json:"dataUri"`
}
