package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"survev-skin-studio/service"
)

// ExportController handles HTTP requests for export bundles
type ExportController struct {
	exportService service.ExportServiceInterface
}

// NewExportController creates a new ExportController
func NewExportController(exportService service.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// Export handles POST /api/designs/{id}/export
// Builds the bundle and returns the manifest plus the file listing
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	bundle, err := c.exportService.ExportDesign(ctx, sessionID)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Failed to export design: %v", err), status)
		return
	}

	manifestJSON, ok := bundle.Get("manifest.json")
	if !ok {
		http.Error(w, "Export bundle is missing its manifest", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Files    []string        `json:"files"`
		Manifest json.RawMessage `json:"manifest"`
	}{
		Files:    bundle.Names(),
		Manifest: manifestJSON,
	})
}

// ExportZip handles GET /api/designs/{id}/export.zip
// Streams the full bundle as a zip archive
func (c *ExportController) ExportZip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	name, data, err := c.exportService.ExportZip(ctx, sessionID)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Failed to build export archive: %v", err), status)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
