package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"survev-skin-studio/models"
	"survev-skin-studio/sprite"
	"survev-skin-studio/utils"
)

// File is one named artifact inside a bundle.
type File struct {
	Name string
	Data []byte
}

// Bundle is the materialized output of an export: an ordered mapping from
// output filename to byte content, built fresh on each request and never
// mutated afterwards.
type Bundle struct {
	files []File
	seen  map[string]bool
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{seen: make(map[string]bool)}
}

// Add appends a file, rejecting duplicate names.
func (b *Bundle) Add(name string, data []byte) error {
	if b.seen[name] {
		return fmt.Errorf("duplicate bundle filename %q", name)
	}
	b.seen[name] = true
	b.files = append(b.files, File{Name: name, Data: data})
	return nil
}

// Files returns the bundle contents in insertion order.
func (b *Bundle) Files() []File {
	out := make([]File, len(b.files))
	copy(out, b.files)
	return out
}

// Names returns the bundle filenames in insertion order.
func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.files))
	for _, f := range b.files {
		names = append(names, f.Name)
	}
	return names
}

// Get returns a copy of the named file's content, keeping the bundle itself
// immutable.
func (b *Bundle) Get(name string) ([]byte, bool) {
	for _, f := range b.files {
		if f.Name == name {
			out := make([]byte, len(f.Data))
			copy(out, f.Data)
			return out, true
		}
	}
	return nil, false
}

// Zip writes the bundle into a deflated zip archive.
func (b *Bundle) Zip() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range b.files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %q: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %q: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip archive: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildBundle snapshots the design into its full artifact set. Required
// fields are checked first; a failed validation produces no partial bundle.
func BuildBundle(design *models.OutfitDesign, set *sprite.Set, previewHTML, schemaVersion string) (*Bundle, error) {
	ident := strings.TrimSpace(design.Ident)
	if ident == "" {
		return nil, fmt.Errorf("missing required field: ident")
	}
	ident = utils.Sanitize(ident)

	// Collect and validate tints. At least one part tint must be present.
	uiTints := design.Tints()
	tsTints := make(map[string]string, len(uiTints))
	anyTint := false
	for slot, tint := range uiTints {
		if tint == "" {
			continue
		}
		ts, err := utils.ToTSHex(tint)
		if err != nil {
			return nil, fmt.Errorf("invalid %s tint: %w", slot, err)
		}
		tsTints[slot] = ts
		anyTint = true
	}
	if !anyTint {
		return nil, fmt.Errorf("missing required field: tints (at least one part tint is required)")
	}

	files := BuildFilenames(ident, design.RefExt, design.LootBorderOn, design.LootBorderName)
	snippet := BuildSnippet(design, ident, files, tsTints)
	manifest := BuildManifest(design, ident, schemaVersion, files, uiTints, tsTints)
	manifestJSON, err := manifest.Encode()
	if err != nil {
		return nil, err
	}

	bundle := NewBundle()
	for _, slot := range []struct {
		key    string
		markup string
	}{
		{"base", set.Body.Markup},
		{"hands", set.Hands.Markup},
		{"feet", set.Feet.Markup},
		{"backpack", set.Backpack.Markup},
		{"loot", set.Loot.Markup},
	} {
		if err := bundle.Add(DiskName(files[slot.key]), []byte(slot.markup)); err != nil {
			return nil, err
		}
	}
	if err := bundle.Add(utils.ApplyPrefix("export", ConstName(ident)+".ts"), []byte(snippet)); err != nil {
		return nil, err
	}
	if err := bundle.Add("manifest.json", manifestJSON); err != nil {
		return nil, err
	}
	if previewHTML != "" {
		if err := bundle.Add("preview.html", []byte(previewHTML)); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}
