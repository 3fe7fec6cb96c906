package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/locsanity/internal/config"
	"github.com/vk/locsanity/internal/ctxlog"
	"github.com/vk/locsanity/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL project loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the project file at path and returns the resulting project,
// starting from config.Default for every attribute the file leaves out.
func (l *Loader) Load(ctx context.Context, path, dir string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory %s: %w", dir, err)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, diags)
	}

	var root schema.Project
	diags = gohcl.DecodeBody(file.Body, evalContext(absDir), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode project file %s: %w", path, diags)
	}

	project := translate(&root, config.Default(absDir))
	project.Resolve()
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("project file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "fonts", len(project.Fonts), "header_rows", project.HeaderRows)
	return project, nil
}

// evalContext exposes the data directory as `dir` and an `env(name)` function
// to project file expressions.
func evalContext(dir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"dir": cty.StringVal(dir),
		},
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

// translate overlays the decoded schema on top of the defaults in p.
func translate(s *schema.Project, p *config.Project) *config.Project {
	if s.HeaderRows != nil {
		p.HeaderRows = *s.HeaderRows
	}
	if s.Extension != nil {
		p.Extension = *s.Extension
	}
	if s.BanCharacters != nil {
		p.BanCharacters = *s.BanCharacters
	}
	if s.ErrorLog != nil {
		p.ErrorLog = *s.ErrorLog
	}
	if s.Workbook != nil {
		p.Workbook = *s.Workbook
	}

	// Declaring any font replaces the default font list.
	if len(s.Fonts) > 0 {
		p.Fonts = make([]config.Font, 0, len(s.Fonts))
		for _, f := range s.Fonts {
			p.Fonts = append(p.Fonts, config.Font{Name: f.Name, Path: f.Path})
		}
	}

	if s.Rules != nil {
		if s.Rules.Autofill != nil {
			p.Rules.Autofill = *s.Rules.Autofill
		}
		if s.Rules.TagParity != nil {
			p.Rules.TagParity = *s.Rules.TagParity
		}
		if s.Rules.FontCoverage != nil {
			p.Rules.FontCoverage = *s.Rules.FontCoverage
		}
	}
	return p
}
