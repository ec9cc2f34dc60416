package preview

import "fmt"

// Preset names are part of the external contract; clients select poses by name.
const (
	PresetLoadout  = "Loadout"
	PresetStanding = "Standing"
	PresetKnocked  = "Knocked"
)

// Preset is a named, fixed preview pose. Presets are static configuration and
// never user-editable.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Layout      Layout `json:"-"`
}

// presets holds the fixed poses in display order.
var presets = []Preset{
	{
		Name:        PresetLoadout,
		Description: "Backpack, armor ring, and helmet aligned like the loadout preview.",
		Layout: func() Layout {
			l := DefaultLayout()
			l.StageWidth = 360
			l.StageHeight = 420
			l.BodySize = 150
			l.BodyTop = 156
			l.HandSize = 60
			l.HandOffsetX = 70
			l.HandTop = 282
			l.BackpackSize = 192
			l.BackpackTop = 68
			l.OverlaySize = 200
			l.OverlayOffsetY = -10
			return l
		}(),
	},
	{
		Name:        PresetStanding,
		Description: "Hands and body framing used when a survivor is upright.",
		Layout: func() Layout {
			l := DefaultLayout()
			l.StageWidth = 300
			l.StageHeight = 280
			l.BodySize = 140
			l.BodyTop = 92
			l.HandSize = 56
			l.HandOffsetX = 78
			l.HandTop = 206
			l.ShowBackpack = false
			l.ShowOverlay = false
			return l
		}(),
	},
	{
		Name:        PresetKnocked,
		Description: "Top-down knocked pose with limbs tucked under the tilted body.",
		Layout: func() Layout {
			l := DefaultLayout()
			l.StageWidth = 320
			l.StageHeight = 320
			l.BodySize = 130
			l.BodyTop = 118
			l.BodyRotation = -28
			l.HandSize = 50
			l.HandOffsetX = 34
			l.HandTop = 222
			l.HandRotationLeft = -18
			l.HandRotationRight = 18
			l.HandsAboveBody = false
			l.ShowBackpack = false
			l.ShowOverlay = false
			l.ShowFeet = true
			l.FeetSize = 44
			l.FeetOffsetX = 36
			l.FeetTop = 244
			l.FeetRotationLeft = -22
			l.FeetRotationRight = 22
			l.FeetAboveBody = false
			return l
		}(),
	},
}

// Presets returns the fixed poses in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName resolves a preset, defaulting to Standing when the name is empty.
func PresetByName(name string) (Preset, error) {
	if name == "" {
		name = PresetStanding
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preview preset %q", name)
}
