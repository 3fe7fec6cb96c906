package fontindex

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// sfntTable looks runes up in the Unicode cmap of a TrueType/OpenType font.
type sfntTable struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// HasRune treats a lookup error like a missing entry: the glyph can't be
// resolved either way.
func (t *sfntTable) HasRune(r rune) bool {
	idx, err := t.font.GlyphIndex(&t.buf, r)
	return err == nil && idx != 0
}

// Parse builds a Font from raw TrueType/OpenType data.
func Parse(name, path string, data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	return NewFont(name, path, &sfntTable{font: f}), nil
}

// LoadFile reads and parses the font file at path.
func LoadFile(name, path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return Parse(name, path, data)
}
