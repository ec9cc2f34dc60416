package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"survev-skin-studio/service"
)

// PreviewController handles HTTP requests for preview rendering
type PreviewController struct {
	designService   service.DesignServiceInterface
	previewService  service.PreviewServiceInterface
	snapshotService service.SnapshotServiceInterface
}

// NewPreviewController creates a new PreviewController
func NewPreviewController(
	designService service.DesignServiceInterface,
	previewService service.PreviewServiceInterface,
	snapshotService service.SnapshotServiceInterface,
) *PreviewController {
	return &PreviewController{
		designService:   designService,
		previewService:  previewService,
		snapshotService: snapshotService,
	}
}

// RenderPreview handles GET /api/designs/{id}/preview?preset=
// Returns the standalone preview HTML document
func (c *PreviewController) RenderPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}
	presetName := r.URL.Query().Get("preset")

	ctx := context.Background()
	design, err := c.designService.GetDesign(ctx, sessionID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get design: %v", err), http.StatusNotFound)
		return
	}

	html, err := c.previewService.RenderPreview(ctx, design, presetName)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render preview: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// ComposeScene handles GET /api/designs/{id}/scene?preset=
// Returns the ordered layer list as JSON for clients that render themselves
func (c *PreviewController) ComposeScene(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}
	presetName := r.URL.Query().Get("preset")

	ctx := context.Background()
	design, err := c.designService.GetDesign(ctx, sessionID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get design: %v", err), http.StatusNotFound)
		return
	}

	scene, err := c.previewService.ComposeScene(ctx, design, presetName)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compose scene: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, scene)
}

// SnapshotPNG handles GET /api/designs/{id}/preview.png?preset=&size=
// Captures the preview in headless Chrome; size=thumb/medium downsizes it
func (c *PreviewController) SnapshotPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}
	presetName := r.URL.Query().Get("preset")
	size := r.URL.Query().Get("size")

	ctx := context.Background()
	design, err := c.designService.GetDesign(ctx, sessionID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get design: %v", err), http.StatusNotFound)
		return
	}
	if presetName == "" {
		presetName = design.Preset
	}

	data, err := c.snapshotService.CapturePreview(ctx, sessionID, presetName)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "unknown preview preset") {
			status = http.StatusBadRequest
		}
		http.Error(w, fmt.Sprintf("Failed to capture preview: %v", err), status)
		return
	}

	if size != "" {
		optimized, err := service.OptimizeSnapshot(data, size)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to optimize snapshot: %v", err), http.StatusInternalServerError)
			return
		}
		data = optimized
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
