package service

import (
	"context"
	"fmt"
	"log"

	"survev-skin-studio/models"
	"survev-skin-studio/preview"
	"survev-skin-studio/repository"
	"survev-skin-studio/schema"
	"survev-skin-studio/sprite"
	"survev-skin-studio/utils"
)

// DesignService handles design session lifecycle and the per-sprite recolor
// and transform operations
// Implements DesignServiceInterface
type DesignService struct {
	repository repository.SessionRepositoryInterface
	registry   *sprite.Registry
	schema     *schema.Engine
}

// NewDesignService creates a new DesignService
func NewDesignService(
	repo repository.SessionRepositoryInterface,
	registry *sprite.Registry,
	schemaEngine *schema.Engine,
) *DesignService {
	return &DesignService{
		repository: repo,
		registry:   registry,
		schema:     schemaEngine,
	}
}

// Ensure DesignService implements DesignServiceInterface
var _ DesignServiceInterface = (*DesignService)(nil)

// defaultPart returns the starting fill settings shared by all parts.
func defaultPart(primary, extra string) models.PartConfig {
	return models.PartConfig{
		Primary:   primary,
		Secondary: utils.Darken(primary, 0.25),
		Extra:     extra,
		Style:     models.FillSolid,
		Angle:     45,
		Gap:       14,
		Opacity:   0.85,
		Size:      5,
		Tint:      primary,
	}
}

// defaultDesign builds the design a fresh session starts from: the stock
// survivor palette with solid fills, standing preset and schema defaults.
func (s *DesignService) defaultDesign() *models.OutfitDesign {
	design := &models.OutfitDesign{
		Name:         "Custom Outfit",
		Body:         defaultPart("#f8c574", "#cba86a"),
		Hands:        defaultPart("#f8c574", "#cba86a"),
		Feet:         defaultPart("#f8c574", "#cba86a"),
		Backpack:     defaultPart("#816537", "#6e5630"),
		LootTint:     "#ffffff",
		StrokeColor:  "#000000",
		StrokeWidth:  8,
		OutlineStyle: models.OutlineSolid,
		Preset:       preview.PresetLoadout,
		Accessory: models.AccessoryConfig{
			SpriteID: "front-pom",
			Scale:    1.0,
		},
	}
	design.Hands.Shape = sprite.ShapeCircle

	if s.schema != nil {
		defaults := s.schema.Defaults()
		design.BaseScale = defaults.BaseScale
		design.LootScale = defaults.LootScale
		design.SoundPickup = defaults.SoundPickup
		design.LootBorderName = defaults.LootBorderName
		design.RefExt = defaults.RefExt
	}
	return design
}

// validate runs schema contract checks when a contract is loaded
func (s *DesignService) validate(design *models.OutfitDesign) error {
	if s.schema == nil {
		return nil
	}
	return s.schema.ValidateDesign(design)
}

// CreateDesign stores a new design session. A nil design starts from defaults.
func (s *DesignService) CreateDesign(ctx context.Context, design *models.OutfitDesign) (*models.OutfitDesign, error) {
	if design == nil {
		design = s.defaultDesign()
	}
	if design.Preset == "" {
		design.Preset = preview.PresetLoadout
	}

	if err := s.validate(design); err != nil {
		log.Printf("❌ Rejected new design: %v", err)
		return nil, err
	}

	// The sprite set must be buildable before the session is accepted, so a
	// broken palette never gets stored.
	if _, err := sprite.BuildSet(design); err != nil {
		log.Printf("❌ Rejected new design: %v", err)
		return nil, err
	}

	id, err := s.repository.Create(ctx, design)
	if err != nil {
		return nil, err
	}
	return s.repository.Get(ctx, id)
}

// GetDesign retrieves a design session
func (s *DesignService) GetDesign(ctx context.Context, sessionID string) (*models.OutfitDesign, error) {
	return s.repository.Get(ctx, sessionID)
}

// UpdateDesign replaces a session's design after validating it
func (s *DesignService) UpdateDesign(ctx context.Context, sessionID string, design *models.OutfitDesign) (*models.OutfitDesign, error) {
	if design == nil {
		return nil, fmt.Errorf("missing design payload")
	}

	if err := s.validate(design); err != nil {
		log.Printf("❌ Rejected design update for session %s: %v", sessionID, err)
		return nil, err
	}
	if _, err := sprite.BuildSet(design); err != nil {
		log.Printf("❌ Rejected design update for session %s: %v", sessionID, err)
		return nil, err
	}

	if err := s.repository.Update(ctx, sessionID, design); err != nil {
		return nil, err
	}
	return s.repository.Get(ctx, sessionID)
}

// DeleteDesign removes a design session
func (s *DesignService) DeleteDesign(ctx context.Context, sessionID string) error {
	return s.repository.Delete(ctx, sessionID)
}

// ListDesigns lists stored design sessions
func (s *DesignService) ListDesigns(ctx context.Context) ([]models.SessionSummary, error) {
	return s.repository.List(ctx)
}

// resolveAsset finds the sprite a request refers to: either one of the
// design's generated part sprites or a built-in registry asset
func (s *DesignService) resolveAsset(design *models.OutfitDesign, spriteID string) (models.SpriteAsset, error) {
	set, err := sprite.BuildSet(design)
	if err != nil {
		return models.SpriteAsset{}, err
	}

	for _, asset := range []models.SpriteAsset{
		set.Body, set.Hands, set.Feet, set.Backpack, set.Loot,
	} {
		if asset.ID == spriteID {
			return asset, nil
		}
	}
	return s.registry.Get(spriteID)
}

// RecolorSprite applies fill tints to one sprite of a design. Tints on the
// generated part sprites are written back into the design so subsequent
// previews and exports pick them up.
func (s *DesignService) RecolorSprite(ctx context.Context, sessionID string, req *models.RecolorRequest) (*models.SpriteResponse, error) {
	design, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	asset, err := s.resolveAsset(design, req.SpriteID)
	if err != nil {
		return nil, err
	}

	markup, err := sprite.Recolor(asset, req.Tints)
	if err != nil {
		log.Printf("❌ Recolor failed for sprite %s in session %s: %v", req.SpriteID, sessionID, err)
		return nil, err
	}

	// Persist tints on the design slots the regions map to. Stored values are
	// normalized so later sprite builds always emit valid CSS colors.
	changed := false
	for region, rawTint := range req.Tints {
		tint := utils.NormalizeHex(rawTint)
		switch {
		case asset.ID == sprite.BodyID && region == "body":
			design.Body.Primary, design.Body.Tint = tint, tint
			changed = true
		case asset.ID == sprite.HandsID && region == "hands":
			design.Hands.Primary, design.Hands.Tint = tint, tint
			changed = true
		case asset.ID == sprite.FeetID && region == "feet":
			design.Feet.Primary, design.Feet.Tint = tint, tint
			changed = true
		case asset.ID == sprite.BackpackID && region == "backpack":
			design.Backpack.Primary, design.Backpack.Tint = tint, tint
			changed = true
		case asset.ID == sprite.LootShirtID && region == "loot":
			design.LootTint = tint
			changed = true
		}
	}
	if changed {
		if err := s.repository.Update(ctx, sessionID, design); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Recolored sprite %s for session %s (%d regions)", req.SpriteID, sessionID, len(req.Tints))
	return &models.SpriteResponse{
		SpriteID: asset.ID,
		Markup:   markup,
		DataURI:  utils.SVGDataURI(markup),
	}, nil
}

// TransformSprite produces a repositioned copy of a sprite. Transforms of the
// design's accessory sprite are stored on the design.
func (s *DesignService) TransformSprite(ctx context.Context, sessionID string, req *models.TransformRequest) (*models.SpriteResponse, error) {
	design, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	asset, err := s.resolveAsset(design, req.SpriteID)
	if err != nil {
		return nil, err
	}

	markup, err := sprite.Transform(asset, req.Rotation, req.Scale, req.OffsetX, req.OffsetY)
	if err != nil {
		log.Printf("❌ Transform failed for sprite %s in session %s: %v", req.SpriteID, sessionID, err)
		return nil, err
	}

	if design.Accessory.SpriteID == req.SpriteID {
		design.Accessory.Rotation = req.Rotation
		design.Accessory.Scale = req.Scale
		design.Accessory.OffsetX = req.OffsetX
		design.Accessory.OffsetY = req.OffsetY
		if err := s.repository.Update(ctx, sessionID, design); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Transformed sprite %s for session %s (rot=%v scale=%v)", req.SpriteID, sessionID, req.Rotation, req.Scale)
	return &models.SpriteResponse{
		SpriteID: asset.ID,
		Markup:   markup,
		DataURI:  utils.SVGDataURI(markup),
	}, nil
}
