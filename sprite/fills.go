package sprite

import (
	"fmt"

	"survev-skin-studio/models"
	"survev-skin-studio/utils"
)

// LinearGradientDefs returns a <defs> block with a rotated linear gradient.
func LinearGradientDefs(id, colorA, colorB string, angleDeg int) string {
	return fmt.Sprintf(`<defs><linearGradient id="%s" gradientUnits="userSpaceOnUse" `+
		`x1="0" y1="0" x2="512" y2="0" gradientTransform="rotate(%d 256 256)">`+
		`<stop offset="0%%" stop-color="%s"/>`+
		`<stop offset="100%%" stop-color="%s"/>`+
		`</linearGradient></defs>`,
		id, angleDeg, colorA, colorB)
}

// RadialGradientDefs returns a <defs> block with a centered radial gradient.
func RadialGradientDefs(id, colorA, colorB string) string {
	return fmt.Sprintf(`<defs><radialGradient id="%s" cx="50%%" cy="45%%" r="60%%">`+
		`<stop offset="0%%" stop-color="%s"/>`+
		`<stop offset="100%%" stop-color="%s"/>`+
		`</radialGradient></defs>`,
		id, colorA, colorB)
}

// StripesDefs returns a <defs> block with a striped pattern at the given angle.
func StripesDefs(id, base, stripe string, gap, angle int, opacity float64) string {
	return fmt.Sprintf(`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d" `+
		`patternTransform="rotate(%d)">`+
		`<rect width="100%%" height="100%%" fill="%s"/>`+
		`<rect x="0" y="0" width="%d" height="100%%" fill="%s" opacity="%s"/>`+
		`</pattern></defs>`,
		id, gap*2, gap*2, angle, base, gap, stripe, trimFloat(opacity))
}

// CrosshatchDefs returns a <defs> block with a crosshatch pattern.
func CrosshatchDefs(id, base, stripe string, gap int, opacity float64) string {
	return fmt.Sprintf(`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d">`+
		`<rect width="100%%" height="100%%" fill="%s"/>`+
		`<path d="M0,0 L%d,0 M0,0 L0,%d" stroke="%s" stroke-width="%s" opacity="%s"/>`+
		`</pattern></defs>`,
		id, gap, gap, base, gap, gap, stripe, trimFloat(float64(gap)/2), trimFloat(opacity))
}

// DotsDefs returns a <defs> block with a polka-dot pattern.
func DotsDefs(id, base, dot string, size, gap int, opacity float64) string {
	return fmt.Sprintf(`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d">`+
		`<rect width="100%%" height="100%%" fill="%s"/>`+
		`<circle cx="%s" cy="%s" r="%d" fill="%s" opacity="%s"/>`+
		`</pattern></defs>`,
		id, gap, gap, base, trimFloat(float64(gap)/2), trimFloat(float64(gap)/2), size, dot, trimFloat(opacity))
}

// CheckerDefs returns a <defs> block with a two-color checkerboard pattern.
func CheckerDefs(id, colorA, colorB string, size int) string {
	return fmt.Sprintf(`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d">`+
		`<rect width="%d" height="%d" fill="%s"/>`+
		`<rect x="%d" width="%d" height="%d" y="0" fill="%s"/>`+
		`<rect x="0" y="%d" width="%d" height="%d" fill="%s"/>`+
		`</pattern></defs>`,
		id, 2*size, 2*size, 2*size, 2*size, colorA, size, size, size, colorB, size, size, size, colorB)
}

// BuildFill turns a part's fill settings into SVG defs plus the fill reference
// the shape should use. Solid fills need no defs and reference the base color
// directly. All colors involved are validated up front; a malformed hex value
// aborts the build with a descriptive error.
func BuildFill(cfg models.PartConfig) (defs, fillRef string, err error) {
	required := []struct{ label, value string }{{"primary", cfg.Primary}}
	switch cfg.Style {
	case models.FillLinearGradient, models.FillRadialGradient, models.FillChecker:
		required = append(required, struct{ label, value string }{"secondary", cfg.Secondary})
	case models.FillDiagonalStripes, models.FillHorizontalStripes, models.FillVerticalStripes,
		models.FillCrosshatch, models.FillDots:
		required = append(required, struct{ label, value string }{"extra", cfg.Extra})
	}
	for _, c := range required {
		if !utils.IsHexColor(c.value) {
			return "", "", fmt.Errorf("invalid %s color %q for fill style %q", c.label, c.value, cfg.Style)
		}
	}

	switch cfg.Style {
	case models.FillSolid, "":
		return "", cfg.Primary, nil
	case models.FillLinearGradient:
		return LinearGradientDefs("lg", cfg.Primary, cfg.Secondary, cfg.Angle), "url(#lg)", nil
	case models.FillRadialGradient:
		return RadialGradientDefs("rg", cfg.Primary, cfg.Secondary), "url(#rg)", nil
	case models.FillDiagonalStripes:
		return StripesDefs("ds", cfg.Primary, cfg.Extra, cfg.Gap, cfg.Angle, cfg.Opacity), "url(#ds)", nil
	case models.FillHorizontalStripes:
		return StripesDefs("hs", cfg.Primary, cfg.Extra, cfg.Gap, 0, cfg.Opacity), "url(#hs)", nil
	case models.FillVerticalStripes:
		return StripesDefs("vs", cfg.Primary, cfg.Extra, cfg.Gap, 90, cfg.Opacity), "url(#vs)", nil
	case models.FillCrosshatch:
		return CrosshatchDefs("ch", cfg.Primary, cfg.Extra, cfg.Gap, cfg.Opacity), "url(#ch)", nil
	case models.FillDots:
		return DotsDefs("pd", cfg.Primary, cfg.Extra, cfg.Size, cfg.Gap, cfg.Opacity), "url(#pd)", nil
	case models.FillChecker:
		return CheckerDefs("ck", cfg.Primary, cfg.Secondary, cfg.Size), "url(#ck)", nil
	default:
		return "", "", fmt.Errorf("unknown fill style %q", cfg.Style)
	}
}
