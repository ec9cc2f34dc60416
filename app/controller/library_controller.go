package controller

import (
	"net/http"

	"survev-skin-studio/preview"
	"survev-skin-studio/schema"
	"survev-skin-studio/sprite"
)

// LibraryController serves the static editor vocabulary: the schema contract,
// the fixed preview presets and the built-in sprite registry
type LibraryController struct {
	schemaEngine *schema.Engine
	registry     *sprite.Registry
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(schemaEngine *schema.Engine, registry *sprite.Registry) *LibraryController {
	return &LibraryController{
		schemaEngine: schemaEngine,
		registry:     registry,
	}
}

// GetSchema handles GET /api/schema
func (c *LibraryController) GetSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.schemaEngine == nil {
		http.Error(w, "Outfit schema is not loaded", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, c.schemaEngine.Config())
}

// GetPresets handles GET /api/presets
func (c *LibraryController) GetPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, preview.Presets())
}

// GetSprites handles GET /api/sprites
func (c *LibraryController) GetSprites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, c.registry.List())
}
