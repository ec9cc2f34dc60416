package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"survev-skin-studio/preview"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// SnapshotService renders the composed preview HTML in headless Chrome and
// captures it as a PNG. Only the screenshot endpoints depend on Chrome; the
// compose and export paths never touch it.
// Implements SnapshotServiceInterface
type SnapshotService struct {
	baseURL string // Base URL the preview endpoint is reachable on (e.g. "http://localhost:8080")
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(baseURL string) *SnapshotService {
	return &SnapshotService{baseURL: baseURL}
}

// Ensure SnapshotService implements SnapshotServiceInterface
var _ SnapshotServiceInterface = (*SnapshotService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// CapturePreview navigates to the preview endpoint for a session and returns
// a PNG screenshot of the stage.
func (s *SnapshotService) CapturePreview(ctx context.Context, sessionID, presetName string) ([]byte, error) {
	preset, err := preview.PresetByName(presetName)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Detect Chrome/Chromium path and configure chromedp
	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/api/designs/%s/preview?preset=%s",
		s.baseURL, url.PathEscape(sessionID), url.QueryEscape(preset.Name))

	// Pad the viewport around the stage so outlines and glow filters are not
	// clipped at the edges.
	viewportW := int64(preset.Layout.StageWidth) + 80
	viewportH := int64(preset.Layout.StageHeight) + 80

	log.Printf("📸 Capturing %s preview for session %s (%dx%d)", preset.Name, sessionID, viewportW, viewportH)

	var buf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(viewportW, viewportH),
		// Transparent page background so the stage screenshot composites
		// cleanly over any editor theme.
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDefaultBackgroundColorOverride().
				WithColor(&cdp.RGBA{R: 0, G: 0, B: 0, A: 0}).
				Do(ctx)
		}),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(500*time.Millisecond), // Wait for layout and SVG decode
		chromedp.Screenshot("#stage", &buf, chromedp.NodeVisible),
	)
	if err != nil {
		log.Printf("❌ Failed to capture preview screenshot: %v", err)
		return nil, fmt.Errorf("failed to capture preview screenshot: %w", err)
	}

	log.Printf("✅ Captured %s preview for session %s (%d bytes)", preset.Name, sessionID, len(buf))
	return buf, nil
}
