package service

import "context"

// SnapshotServiceInterface defines the contract for headless preview screenshots
type SnapshotServiceInterface interface {
	CapturePreview(ctx context.Context, sessionID, presetName string) ([]byte, error)
}
