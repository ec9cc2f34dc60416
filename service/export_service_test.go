package service

import (
	"context"
	"strings"
	"testing"

	"survev-skin-studio/repository"
	"survev-skin-studio/schema"
	"survev-skin-studio/sprite"
)

func TestExportDesignEndToEnd(t *testing.T) {
	engine, err := schema.NewEngineFromJSON([]byte(testSchemaConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := repository.NewSessionRepository()
	registry := sprite.NewRegistry()
	designSvc := NewDesignService(repo, registry, engine)
	previewSvc := NewPreviewService(registry)
	exportSvc := NewExportService(repo, previewSvc, engine)
	ctx := context.Background()

	design, err := designSvc.CreateDesign(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	design.Ident = "camoFox"
	design.Name = "Camo Fox"
	if _, err := designSvc.UpdateDesign(ctx, design.SessionID, design); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bundle, err := exportSvc.ExportDesign(ctx, design.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := strings.Join(bundle.Names(), ",")
	for _, want := range []string{
		"player-base-camoFox.svg",
		"export/outfitCamoFox.ts",
		"manifest.json",
		"preview.html",
	} {
		if !strings.Contains(names, want) {
			t.Errorf("bundle missing %q (have %s)", want, names)
		}
	}

	zipName, zipData, err := exportSvc.ExportZip(ctx, design.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zipName != "camoFox-skin.zip" {
		t.Errorf("archive name %q", zipName)
	}
	if len(zipData) == 0 {
		t.Error("empty archive")
	}
}

func TestExportDesignWithoutIdentFails(t *testing.T) {
	engine, err := schema.NewEngineFromJSON([]byte(testSchemaConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := repository.NewSessionRepository()
	registry := sprite.NewRegistry()
	designSvc := NewDesignService(repo, registry, engine)
	exportSvc := NewExportService(repo, NewPreviewService(registry), engine)
	ctx := context.Background()

	design, err := designSvc.CreateDesign(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := exportSvc.ExportDesign(ctx, design.SessionID); err == nil {
		t.Error("export without an identifier should fail")
	}
}
