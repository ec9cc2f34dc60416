package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"survev-skin-studio/models"
	"survev-skin-studio/service"
)

// DesignController handles HTTP requests for design sessions
type DesignController struct {
	designService service.DesignServiceInterface
}

// NewDesignController creates a new DesignController
func NewDesignController(designService service.DesignServiceInterface) *DesignController {
	return &DesignController{
		designService: designService,
	}
}

// sessionIDFromPath extracts the session ID segment from a design route.
// Path format: /api/designs/{id}[/action]
func sessionIDFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/api/designs/")
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

// writeJSON encodes a JSON response body
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// CreateDesign handles POST /api/designs
// An empty body starts a session from the stock defaults
func (c *DesignController) CreateDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var design *models.OutfitDesign
	if r.Body != nil && r.ContentLength != 0 {
		design = &models.OutfitDesign{}
		if err := json.NewDecoder(r.Body).Decode(design); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
	}

	ctx := context.Background()
	created, err := c.designService.CreateDesign(ctx, design)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create design: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListDesigns handles GET /api/designs
func (c *DesignController) ListDesigns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	summaries, err := c.designService.ListDesigns(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list designs: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetDesign handles GET /api/designs/{id}
func (c *DesignController) GetDesign(w http.ResponseWriter, r *http.Request) {
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
	design, err := c.designService.GetDesign(ctx, sessionID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get design: %v", err), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, design)
}

// UpdateDesign handles PUT /api/designs/{id}
func (c *DesignController) UpdateDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	var design models.OutfitDesign
	if err := json.NewDecoder(r.Body).Decode(&design); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	updated, err := c.designService.UpdateDesign(ctx, sessionID, &design)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Failed to update design: %v", err), status)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteDesign handles DELETE /api/designs/{id}
func (c *DesignController) DeleteDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	if err := c.designService.DeleteDesign(ctx, sessionID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete design: %v", err), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"message":   "Design session deleted",
		"sessionId": sessionID,
	})
}

// Recolor handles POST /api/designs/{id}/recolor
func (c *DesignController) Recolor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	var req models.RecolorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	resp, err := c.designService.RecolorSprite(ctx, sessionID, &req)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Failed to recolor sprite: %v", err), status)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Transform handles POST /api/designs/{id}/transform
func (c *DesignController) Transform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := sessionIDFromPath(r.URL.Path)
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	var req models.TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	resp, err := c.designService.TransformSprite(ctx, sessionID, &req)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Failed to transform sprite: %v", err), status)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
