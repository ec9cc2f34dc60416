package service

import (
	"context"
	"strings"
	"testing"
)

func TestCapturePreviewRejectsUnknownPreset(t *testing.T) {
	svc := NewSnapshotService("http://localhost:8080")

	_, err := svc.CapturePreview(context.Background(), "some-session", "Sitting")
	if err == nil {
		t.Fatal("unknown preset should fail before launching the browser")
	}
	if !strings.Contains(err.Error(), "unknown preview preset") {
		t.Errorf("error should name the preset problem: %v", err)
	}
}
