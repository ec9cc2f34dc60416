package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// OptimizeSnapshot downsizes a preview screenshot for delivery.
// imageData: raw PNG bytes from the screenshot pipeline
// size: "thumb" or "medium"
// Returns resized PNG bytes; PNG is kept so the transparent stage survives.
func OptimizeSnapshot(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	log.Printf("📸 Snapshot decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
	case "medium":
		maxDim = maxSizeMedium
	default:
		maxDim = maxSizeMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		// Calculate new dimensions maintaining aspect ratio
		var newWidth, newHeight int
		if width > height {
			newWidth = maxDim
			newHeight = int(float64(height) * float64(maxDim) / float64(width))
		} else {
			newHeight = maxDim
			newWidth = int(float64(width) * float64(maxDim) / float64(height))
		}

		log.Printf("🔄 Resizing snapshot: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, resizedImg); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot PNG: %w", err)
	}
	optimizedData := buf.Bytes()

	log.Printf("✓ Snapshot optimized: size=%s, output_size=%d bytes", size, len(optimizedData))
	return optimizedData, nil
}
