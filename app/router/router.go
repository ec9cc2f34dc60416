package router

import (
	"net/http"
	"strings"

	"survev-skin-studio/app/controller"
)

type Controllers struct {
	Design  *controller.DesignController
	Preview *controller.PreviewController
	Export  *controller.ExportController
	Library *controller.LibraryController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Editor vocabulary routes
	http.HandleFunc("/api/schema", controllers.Library.GetSchema)
	http.HandleFunc("/api/presets", controllers.Library.GetPresets)
	http.HandleFunc("/api/sprites", controllers.Library.GetSprites)

	// Design session collection - handles POST (create) and GET (list)
	http.HandleFunc("/api/designs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Design.CreateDesign(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Design.ListDesigns(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Design session routes (actions before the generic /:id route)
	http.HandleFunc("/api/designs/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/designs/")

		// Route to specific actions first
		if strings.HasSuffix(path, "/recolor") {
			controllers.Design.Recolor(w, r)
			return
		}
		if strings.HasSuffix(path, "/transform") {
			controllers.Design.Transform(w, r)
			return
		}
		if strings.HasSuffix(path, "/preview.png") {
			controllers.Preview.SnapshotPNG(w, r)
			return
		}
		if strings.HasSuffix(path, "/preview") {
			controllers.Preview.RenderPreview(w, r)
			return
		}
		if strings.HasSuffix(path, "/scene") {
			controllers.Preview.ComposeScene(w, r)
			return
		}
		if strings.HasSuffix(path, "/export.zip") {
			controllers.Export.ExportZip(w, r)
			return
		}
		if strings.HasSuffix(path, "/export") {
			controllers.Export.Export(w, r)
			return
		}

		// Otherwise, treat as /api/designs/:id
		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			controllers.Design.GetDesign(w, r)
		case http.MethodPut:
			controllers.Design.UpdateDesign(w, r)
		case http.MethodDelete:
			controllers.Design.DeleteDesign(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
