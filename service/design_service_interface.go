package service

import (
	"context"

	"survev-skin-studio/models"
)

// DesignServiceInterface defines the contract for design session operations
type DesignServiceInterface interface {
	CreateDesign(ctx context.Context, design *models.OutfitDesign) (*models.OutfitDesign, error)
	GetDesign(ctx context.Context, sessionID string) (*models.OutfitDesign, error)
	UpdateDesign(ctx context.Context, sessionID string, design *models.OutfitDesign) (*models.OutfitDesign, error)
	DeleteDesign(ctx context.Context, sessionID string) error
	ListDesigns(ctx context.Context) ([]models.SessionSummary, error)
	RecolorSprite(ctx context.Context, sessionID string, req *models.RecolorRequest) (*models.SpriteResponse, error)
	TransformSprite(ctx context.Context, sessionID string, req *models.TransformRequest) (*models.SpriteResponse, error)
}
