package sprite

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"survev-skin-studio/models"
	"survev-skin-studio/utils"
)

// fillAttrRegex matches the fill attribute inside a single element tag.
var fillAttrRegex = regexp.MustCompile(`fill="[^"]*"`)

// Recolor returns new markup with the fill of each named region replaced by
// its tint. Only elements whose id matches a declared fill region are touched;
// outline geometry, path data and every other attribute stay byte-identical.
// All tints are validated before anything is rewritten, so a malformed hex
// value or an unknown region leaves no partial result behind.
func Recolor(asset models.SpriteAsset, tints map[string]string) (string, error) {
	if len(tints) == 0 {
		return asset.Markup, nil
	}

	// Validate the whole mapping up front.
	regions := make([]string, 0, len(tints))
	for region, tint := range tints {
		if !asset.HasRegion(region) {
			return "", fmt.Errorf("sprite %q has no fill region %q", asset.ID, region)
		}
		if !utils.IsHexColor(tint) {
			return "", fmt.Errorf("malformed tint %q for fill region %q", tint, region)
		}
		regions = append(regions, region)
	}
	sort.Strings(regions)

	markup := asset.Markup
	for _, region := range regions {
		updated, err := retintRegion(markup, region, utils.NormalizeHex(tints[region]))
		if err != nil {
			return "", fmt.Errorf("sprite %q: %w", asset.ID, err)
		}
		markup = updated
	}
	return markup, nil
}

// retintRegion rewrites the fill attribute of the element carrying the given id.
func retintRegion(markup, region, tint string) (string, error) {
	marker := fmt.Sprintf(`id="%s"`, region)
	idx := strings.Index(markup, marker)
	if idx < 0 {
		return "", fmt.Errorf("fill region %q not present in markup", region)
	}

	// Locate the boundaries of the element tag around the id attribute.
	tagStart := strings.LastIndex(markup[:idx], "<")
	tagEnd := strings.Index(markup[idx:], ">")
	if tagStart < 0 || tagEnd < 0 {
		return "", fmt.Errorf("fill region %q has malformed element markup", region)
	}
	tagEnd += idx

	tag := markup[tagStart : tagEnd+1]
	if !fillAttrRegex.MatchString(tag) {
		return "", fmt.Errorf("fill region %q element has no fill attribute", region)
	}
	retinted := fillAttrRegex.ReplaceAllString(tag, fmt.Sprintf(`fill="%s"`, tint))
	return markup[:tagStart] + retinted + markup[tagEnd+1:], nil
}
