package sprite

import (
	"fmt"

	"survev-skin-studio/models"
)

// Registry holds the immutable built-in sprite assets that designs reference
// by ID (accessory sprites, loot border art). Assets are built once at startup
// and only ever read afterwards.
type Registry struct {
	assets map[string]models.SpriteAsset
	order  []string
}

// NewRegistry builds the registry with the stock accessory and loot sprites.
func NewRegistry() *Registry {
	r := &Registry{assets: make(map[string]models.SpriteAsset)}

	// Stock accessories: a round pom and a wider flare variant.
	r.add(AccessoryAsset("front-pom", "", "#d9534f", "#ffffff", 1.1, 0.45))
	r.add(AccessoryAsset("front-flare", "", "#5bc0de", "#ffffff", 1.3, 0.3))

	// Stock loot border art referenced by loot border names.
	r.add(LootCircleOuterAsset("#000000"))
	r.add(LootCircleInnerAsset("#ffffff"))

	// Preview-only armor ring and helmet accent.
	r.add(OverlayAsset())

	return r
}

func (r *Registry) add(asset models.SpriteAsset) {
	if _, exists := r.assets[asset.ID]; exists {
		// Sprite identifiers are unique; duplicates indicate a programming error.
		panic(fmt.Sprintf("duplicate sprite asset id %q", asset.ID))
	}
	r.assets[asset.ID] = asset
	r.order = append(r.order, asset.ID)
}

// Get resolves a sprite reference. Unresolvable references are reported as
// validation errors, never panics.
func (r *Registry) Get(id string) (models.SpriteAsset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return models.SpriteAsset{}, fmt.Errorf("unresolvable sprite reference %q", id)
	}
	return asset, nil
}

// List returns summaries of all built-in assets in registration order.
func (r *Registry) List() []models.SpriteSummary {
	summaries := make([]models.SpriteSummary, 0, len(r.order))
	for _, id := range r.order {
		asset := r.assets[id]
		summaries = append(summaries, models.SpriteSummary{
			ID:          asset.ID,
			Width:       asset.Width,
			Height:      asset.Height,
			FillRegions: asset.FillRegions,
		})
	}
	return summaries
}
