package fontindex

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// GlyphTable reports whether a font's character map has an entry for a rune.
type GlyphTable interface {
	HasRune(r rune) bool
}

// Font is one loaded font together with the runes it has been asked to
// supply so far.
type Font struct {
	Name  string
	Path  string
	table GlyphTable
	used  map[rune]struct{}
}

// NewFont wraps a glyph table.
func NewFont(name, path string, table GlyphTable) *Font {
	return &Font{
		Name:  name,
		Path:  path,
		table: table,
		used:  make(map[rune]struct{}),
	}
}

// Used returns the runes attributed to this font, sorted by code point.
func (f *Font) Used() []rune {
	out := make([]rune, 0, len(f.used))
	for r := range f.used {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UsageLogPath is the file the usage reporter writes for this font.
func (f *Font) UsageLogPath() string {
	return f.Path + ".log"
}

// Index is an ordered set of fonts. Its usage sets are mutated by Covers.
type Index struct {
	fonts []*Font
}

// New builds an index consulting fonts in the given order.
func New(fonts ...*Font) *Index {
	return &Index{fonts: fonts}
}

// Fonts returns the indexed fonts in lookup order.
func (x *Index) Fonts() []*Font {
	return x.fonts
}

// Covers reports whether r is present in at least one font. The first font
// that has r gets it added to its usage set; later fonts are not consulted.
func (x *Index) Covers(r rune) bool {
	for _, f := range x.fonts {
		if f.table.HasRune(r) {
			f.used[r] = struct{}{}
			return true
		}
	}
	return false
}

// WriteUsage writes, for every font, its used runes sorted by code point and
// concatenated without separators to the font's usage log.
func (x *Index) WriteUsage() error {
	for _, f := range x.fonts {
		var sb strings.Builder
		for _, r := range f.Used() {
			sb.WriteRune(r)
		}
		if err := os.WriteFile(f.UsageLogPath(), []byte(sb.String()), 0o644); err != nil {
			return fmt.Errorf("write usage log for font %q: %w", f.Name, err)
		}
	}
	return nil
}
