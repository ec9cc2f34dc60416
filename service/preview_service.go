package service

import (
	"context"
	"log"

	"survev-skin-studio/models"
	"survev-skin-studio/preview"
	"survev-skin-studio/sprite"
)

// PreviewService composes the layered preview scenes and renders them as
// standalone HTML documents
// Implements PreviewServiceInterface
type PreviewService struct {
	registry *sprite.Registry
}

// NewPreviewService creates a new PreviewService
func NewPreviewService(registry *sprite.Registry) *PreviewService {
	return &PreviewService{registry: registry}
}

// Ensure PreviewService implements PreviewServiceInterface
var _ PreviewServiceInterface = (*PreviewService)(nil)

// resolvePreset picks the requested preset, falling back to the design's own
func (s *PreviewService) resolvePreset(design *models.OutfitDesign, presetName string) (preview.Preset, error) {
	if presetName == "" {
		presetName = design.Preset
	}
	return preview.PresetByName(presetName)
}

// ComposeScene builds the ordered layer list for a design under a preset
func (s *PreviewService) ComposeScene(ctx context.Context, design *models.OutfitDesign, presetName string) (*preview.Scene, error) {
	preset, err := s.resolvePreset(design, presetName)
	if err != nil {
		return nil, err
	}

	set, err := sprite.BuildSet(design)
	if err != nil {
		log.Printf("❌ Failed to build sprite set for preview: %v", err)
		return nil, err
	}

	scene, err := preview.Compose(design, preset, set, s.registry)
	if err != nil {
		log.Printf("❌ Failed to compose %s preview: %v", preset.Name, err)
		return nil, err
	}

	log.Printf("✓ Composed %s preview: %d layers", preset.Name, len(scene.Layers))
	return scene, nil
}

// RenderPreview renders the composed scene into the standalone preview HTML
func (s *PreviewService) RenderPreview(ctx context.Context, design *models.OutfitDesign, presetName string) (string, error) {
	preset, err := s.resolvePreset(design, presetName)
	if err != nil {
		return "", err
	}

	set, err := sprite.BuildSet(design)
	if err != nil {
		log.Printf("❌ Failed to build sprite set for preview: %v", err)
		return "", err
	}

	scene, err := preview.Compose(design, preset, set, s.registry)
	if err != nil {
		log.Printf("❌ Failed to compose %s preview: %v", preset.Name, err)
		return "", err
	}

	html, err := preview.RenderHTML(design, scene, set)
	if err != nil {
		log.Printf("❌ Failed to render preview HTML: %v", err)
		return "", err
	}

	log.Printf("✅ Rendered %s preview HTML (%d bytes)", preset.Name, len(html))
	return html, nil
}
