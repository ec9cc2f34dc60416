package service

import (
	"context"

	"survev-skin-studio/models"
	"survev-skin-studio/preview"
)

// PreviewServiceInterface defines the contract for preview composition
type PreviewServiceInterface interface {
	ComposeScene(ctx context.Context, design *models.OutfitDesign, presetName string) (*preview.Scene, error)
	RenderPreview(ctx context.Context, design *models.OutfitDesign, presetName string) (string, error)
}
