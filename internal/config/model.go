package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/locsanity/internal/record"
	"github.com/vk/locsanity/internal/rules"
)

// DefaultFileName is the project file looked up in the data directory when
// no explicit path is given.
const DefaultFileName = "locsanity.hcl"

// ErrInvalid marks a project configuration that failed validation.
var ErrInvalid = errors.New("invalid project configuration")

// Loader is the interface for a format-specific project file loader.
type Loader interface {
	// Load reads the project file at path. Relative paths inside it are
	// resolved against dir, the data directory.
	Load(ctx context.Context, path, dir string) (*Project, error)
}

// Project is the unified, format-agnostic project configuration.
type Project struct {
	// Dir is the data directory holding the sheet files.
	Dir           string
	HeaderRows    int
	Extension     string
	BanCharacters string
	ErrorLog      string
	Workbook      string
	Fonts         []Font
	Rules         Rules
}

// Font names a font file to check glyph coverage against.
type Font struct {
	Name string
	Path string
}

// Rules toggles the optional checks.
type Rules struct {
	Autofill  bool
	TagParity bool
	// FontCoverage turns the glyph check on. When off, no font is loaded
	// and no usage log is written.
	FontCoverage bool
}

// Default returns the project used when no project file exists.
func Default(dir string) *Project {
	return &Project{
		Dir:           dir,
		HeaderRows:    record.DefaultHeaderRows,
		Extension:     ".csv",
		BanCharacters: rules.DefaultBanCharacters,
		ErrorLog:      "errors.log",
		Workbook:      "translations.xlsx",
		Fonts: []Font{
			{Name: "latin", Path: "fusion-pixel-12px-proportional-latin.ttf"},
			{Name: "zh_hans", Path: "fusion-pixel-12px-proportional-zh_hans.ttf"},
		},
		Rules: Rules{Autofill: true, TagParity: true, FontCoverage: true},
	}
}

// Resolve makes every relative path absolute against Dir.
func (p *Project) Resolve() {
	p.ErrorLog = p.resolve(p.ErrorLog)
	p.Workbook = p.resolve(p.Workbook)
	for i := range p.Fonts {
		p.Fonts[i].Path = p.resolve(p.Fonts[i].Path)
	}
}

func (p *Project) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}

// Validate checks the project for values the scan cannot work with.
func (p *Project) Validate() error {
	if p.HeaderRows < 0 {
		return fmt.Errorf("%w: header_rows must not be negative, got %d", ErrInvalid, p.HeaderRows)
	}
	if !strings.HasPrefix(p.Extension, ".") || len(p.Extension) < 2 {
		return fmt.Errorf("%w: extension must look like \".csv\", got %q", ErrInvalid, p.Extension)
	}
	if p.ErrorLog == "" {
		return fmt.Errorf("%w: error_log must not be empty", ErrInvalid)
	}
	if p.Rules.FontCoverage && len(p.Fonts) == 0 {
		return fmt.Errorf("%w: font_coverage is on but no font is declared", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(p.Fonts))
	for _, f := range p.Fonts {
		if f.Path == "" {
			return fmt.Errorf("%w: font %q has no path", ErrInvalid, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: font %q declared twice", ErrInvalid, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
