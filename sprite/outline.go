package sprite

import (
	"fmt"

	"survev-skin-studio/models"
	"survev-skin-studio/utils"
)

// outlineParts resolves an outline style into defs markup, the stroke
// attribute block for the main shape, and an optional outer stroke block for
// double-stroked outlines. The prefix keeps generated ids unique per part.
func outlineParts(style models.OutlineStyle, strokeColor string, strokeWidth float64, prefix string) (defs, attrs, outer string) {
	if strokeColor == "" || strokeWidth <= 0 {
		return "", "", ""
	}

	attrs = Outline(strokeColor, strokeWidth)

	switch style {
	case models.OutlineGlow:
		blur := strokeWidth / 2
		defs = fmt.Sprintf(`<defs><filter id="%s-glow" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
			`<feGaussianBlur stdDeviation="%.2f" result="blur" />`+
			`<feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>`+
			`</filter></defs>`, prefix, blur)
		attrs = fmt.Sprintf(`stroke="%s" stroke-width="%s" filter="url(#%s-glow)"`,
			strokeColor, trimFloat(strokeWidth), prefix)
	case models.OutlineGradient:
		gradID := prefix + "-stroke-grad"
		defs = fmt.Sprintf(`<defs><linearGradient id="%s" x1="0%%" y1="0%%" x2="0%%" y2="100%%">`+
			`<stop offset="0%%" stop-color="%s"/>`+
			`<stop offset="100%%" stop-color="%s"/>`+
			`</linearGradient></defs>`,
			gradID, utils.Lighten(strokeColor, 0.2), utils.Darken(strokeColor, 0.2))
		attrs = fmt.Sprintf(`stroke="url(#%s)" stroke-width="%s"`, gradID, trimFloat(strokeWidth))
	case models.OutlineDashed:
		dash := strokeWidth * 1.6
		gap := strokeWidth * 0.9
		attrs = fmt.Sprintf(`stroke="%s" stroke-width="%s" stroke-dasharray="%.2f %.2f"`,
			strokeColor, trimFloat(strokeWidth), dash, gap)
	case models.OutlineDouble:
		outer = Outline(utils.Darken(strokeColor, 0.25), strokeWidth*1.6)
		attrs = Outline(strokeColor, strokeWidth)
	}

	return defs, attrs, outer
}
