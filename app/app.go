package app

import (
	"fmt"
	"os"

	"survev-skin-studio/app/controller"
	"survev-skin-studio/app/router"
	"survev-skin-studio/repository"
	"survev-skin-studio/schema"
	"survev-skin-studio/service"
	"survev-skin-studio/sprite"
)

// Initialize initializes the application
func Initialize() error {
	// Load the outfit schema contract
	schemaPath := os.Getenv("OUTFIT_SCHEMA_PATH")
	if schemaPath == "" {
		schemaPath = "configs/outfit_schema.json"
	}
	schemaEngine, err := schema.NewEngine(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load outfit schema: %w", err)
	}

	// Base URL the snapshot service reaches the preview endpoint on
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}

	// Built-in sprite registry
	registry := sprite.NewRegistry()

	// Initialize repository
	sessionRepo := repository.NewSessionRepository()

	// Initialize services
	designService := service.NewDesignService(sessionRepo, registry, schemaEngine)
	previewService := service.NewPreviewService(registry)
	snapshotService := service.NewSnapshotService(baseURL)
	exportService := service.NewExportService(sessionRepo, previewService, schemaEngine)

	// Create controllers
	controllers := &router.Controllers{
		Design:  controller.NewDesignController(designService),
		Preview: controller.NewPreviewController(designService, previewService, snapshotService),
		Export:  controller.NewExportController(exportService),
		Library: controller.NewLibraryController(schemaEngine, registry),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
