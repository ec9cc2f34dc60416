package repository

import (
	"context"

	"survev-skin-studio/models"
)

// SessionRepositoryInterface defines the contract for design session storage
type SessionRepositoryInterface interface {
	Create(ctx context.Context, design *models.OutfitDesign) (string, error)
	Get(ctx context.Context, sessionID string) (*models.OutfitDesign, error)
	Update(ctx context.Context, sessionID string, design *models.OutfitDesign) error
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]models.SessionSummary, error)
}
