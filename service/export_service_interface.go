package service

import (
	"context"

	"survev-skin-studio/export"
)

// ExportServiceInterface defines the contract for export bundle generation
type ExportServiceInterface interface {
	ExportDesign(ctx context.Context, sessionID string) (*export.Bundle, error)
	ExportZip(ctx context.Context, sessionID string) (string, []byte, error)
}
