package models

// SpriteAsset is a named vector graphic fragment with a declared set of fill
// regions eligible for recoloring. Assets are immutable once built; designs
// reference them by ID and every engine operation returns fresh markup.
type SpriteAsset struct {
	ID          string   `json:"id"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Markup      string   `json:"markup"`
	FillRegions []string `json:"fillRegions"`
}

// HasRegion reports whether the asset declares the named fill region.
func (a *SpriteAsset) HasRegion(region string) bool {
	for _, r := range a.FillRegions {
		if r == region {
			return true
		}
	}
	return false
}

// SpriteSummary is the listing form returned by the sprite library endpoint.
type SpriteSummary struct {
	ID          string   `json:"id"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	FillRegions []string `json:"fillRegions"`
}
