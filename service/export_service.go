package service

import (
	"context"
	"fmt"
	"log"

	"survev-skin-studio/export"
	"survev-skin-studio/models"
	"survev-skin-studio/repository"
	"survev-skin-studio/schema"
	"survev-skin-studio/sprite"
	"survev-skin-studio/utils"
)

// ExportService assembles export bundles for design sessions
// Implements ExportServiceInterface
type ExportService struct {
	repository repository.SessionRepositoryInterface
	preview    PreviewServiceInterface
	schema     *schema.Engine
}

// NewExportService creates a new ExportService
func NewExportService(
	repo repository.SessionRepositoryInterface,
	previewService PreviewServiceInterface,
	schemaEngine *schema.Engine,
) *ExportService {
	return &ExportService{
		repository: repo,
		preview:    previewService,
		schema:     schemaEngine,
	}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// schemaVersion reports the loaded contract version, empty when none is loaded
func (s *ExportService) schemaVersion() string {
	if s.schema == nil {
		return ""
	}
	return s.schema.Config().Version
}

// ExportDesign builds the full artifact bundle for a session
func (s *ExportService) ExportDesign(ctx context.Context, sessionID string) (*export.Bundle, error) {
	design, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.bundleDesign(ctx, sessionID, design)
}

// bundleDesign validates an already-fetched design and assembles its bundle
func (s *ExportService) bundleDesign(ctx context.Context, sessionID string, design *models.OutfitDesign) (*export.Bundle, error) {
	if s.schema != nil {
		if err := s.schema.ValidateDesign(design); err != nil {
			log.Printf("❌ Export blocked for session %s: %v", sessionID, err)
			return nil, err
		}
	}

	set, err := sprite.BuildSet(design)
	if err != nil {
		log.Printf("❌ Failed to build sprite set for export: %v", err)
		return nil, err
	}

	previewHTML, err := s.preview.RenderPreview(ctx, design, design.Preset)
	if err != nil {
		return nil, err
	}

	bundle, err := export.BuildBundle(design, set, previewHTML, s.schemaVersion())
	if err != nil {
		log.Printf("❌ Export failed for session %s: %v", sessionID, err)
		return nil, err
	}

	log.Printf("✅ Exported session %s: %d files", sessionID, len(bundle.Names()))
	return bundle, nil
}

// ExportZip builds the bundle and packs it into a zip archive. Returns the
// suggested archive filename and its bytes.
func (s *ExportService) ExportZip(ctx context.Context, sessionID string) (string, []byte, error) {
	design, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	bundle, err := s.bundleDesign(ctx, sessionID, design)
	if err != nil {
		return "", nil, err
	}

	data, err := bundle.Zip()
	if err != nil {
		log.Printf("❌ Failed to zip export for session %s: %v", sessionID, err)
		return "", nil, err
	}

	name := fmt.Sprintf("%s-skin.zip", utils.Sanitize(design.Ident))
	log.Printf("✅ Zipped export for session %s: %s (%d bytes)", sessionID, name, len(data))
	return name, data, nil
}
