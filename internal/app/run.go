package app

import (
	"context"
	"fmt"

	"github.com/vk/locsanity/internal/ctxlog"
	"github.com/vk/locsanity/internal/findings"
	"github.com/vk/locsanity/internal/fontindex"
	"github.com/vk/locsanity/internal/rules"
	"github.com/vk/locsanity/internal/scan"
	"github.com/vk/locsanity/internal/workbook"
)

// Run executes the configured mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger.With("mode", a.config.Mode))
	a.logger.Debug("App.Run method started.")

	var err error
	switch a.config.Mode {
	case ModeSplit:
		_, err = workbook.Split(ctx, a.project.Workbook, a.project.Dir, a.project.Extension)
	case ModeCombine:
		err = workbook.Combine(ctx, a.project.Dir, a.project.Extension, a.project.Workbook)
	case ModeScan:
		err = a.scan(ctx)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownMode, a.config.Mode)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", a.config.Mode, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) scan(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	p := a.project

	var fonts []*fontindex.Font
	if p.Rules.FontCoverage {
		for _, f := range p.Fonts {
			font, err := fontindex.LoadFile(f.Name, f.Path)
			if err != nil {
				return err
			}
			fonts = append(fonts, font)
		}
		logger.Debug("Fonts loaded.", "count", len(fonts))
	} else {
		logger.Info("Font coverage disabled, glyphs are not checked.")
	}
	index := fontindex.New(fonts...)

	var coverage rules.Coverage
	if len(fonts) > 0 {
		coverage = index
	}

	sink, logFile, err := findings.Open(ctx, p.ErrorLog, a.outW)
	if err != nil {
		return err
	}
	defer logFile.Close()

	sum, err := scan.Run(ctx, scan.Options{
		Dir:        p.Dir,
		Extension:  p.Extension,
		HeaderRows: p.HeaderRows,
		Engine: rules.Default(rules.Options{
			BanCharacters: p.BanCharacters,
			Fonts:         coverage,
			Autofill:      p.Rules.Autofill,
			TagParity:     p.Rules.TagParity,
		}),
		Sink:  sink,
		Fonts: index,
	})
	if err != nil {
		return err
	}

	if sum.Findings > 0 {
		logger.Warn("Translation problems found.", "findings", sum.Findings, "error_log", p.ErrorLog)
	}
	return logFile.Close()
}
