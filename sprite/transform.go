package sprite

import (
	"fmt"
	"math"
	"strings"

	"survev-skin-studio/models"
)

const epsilon = 1e-6

// Transform returns a repositioned/resized copy of the sprite markup.
// Rotation and scaling pivot around the sprite centre; the offset shifts the
// result afterwards. The source asset is never modified. A non-positive scale
// is rejected before any markup is generated.
func Transform(asset models.SpriteAsset, rotation, scale, offsetX, offsetY float64) (string, error) {
	if scale <= 0 {
		return "", fmt.Errorf("invalid scale %.4f for sprite %q: must be positive", scale, asset.ID)
	}

	header, inner, footer, err := splitMarkup(asset.Markup)
	if err != nil {
		return "", fmt.Errorf("sprite %q: %w", asset.ID, err)
	}

	cx := asset.Width / 2
	cy := asset.Height / 2

	var ops []string
	if math.Abs(offsetX) > epsilon || math.Abs(offsetY) > epsilon {
		ops = append(ops, fmt.Sprintf("translate(%.2f,%.2f)", offsetX, offsetY))
	}
	if math.Abs(rotation) > epsilon || math.Abs(scale-1.0) > epsilon {
		ops = append(ops, fmt.Sprintf("translate(%.2f,%.2f)", cx, cy))
		if math.Abs(rotation) > epsilon {
			ops = append(ops, fmt.Sprintf("rotate(%.2f)", rotation))
		}
		if math.Abs(scale-1.0) > epsilon {
			ops = append(ops, fmt.Sprintf("scale(%.4f)", scale))
		}
		ops = append(ops, fmt.Sprintf("translate(%.2f,%.2f)", -cx, -cy))
	}

	// Identity transforms return the markup untouched.
	if len(ops) == 0 {
		return asset.Markup, nil
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`<g transform="%s">`, strings.Join(ops, " ")))
	b.WriteString(inner)
	b.WriteString("</g>\n")
	b.WriteString(footer)
	return b.String(), nil
}
