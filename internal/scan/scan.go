// Package scan runs the validation pass over every sheet file of a data
// directory.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/locsanity/internal/ctxlog"
	"github.com/vk/locsanity/internal/fontindex"
	"github.com/vk/locsanity/internal/fsutil"
	"github.com/vk/locsanity/internal/record"
	"github.com/vk/locsanity/internal/rules"
)

// Options configures a scan pass.
type Options struct {
	Dir        string
	Extension  string
	HeaderRows int
	Engine     *rules.Engine
	Sink       rules.Sink
	// Fonts, when set, gets its usage logs written after the last sheet.
	Fonts *fontindex.Index
}

// Summary counts what a scan pass looked at.
type Summary struct {
	Sheets   int
	Rows     int
	Findings int
}

// Run scans every sheet file in opts.Dir. Findings go to opts.Sink and never
// stop the pass; a structural problem with any file aborts it.
func Run(ctx context.Context, opts Options) (Summary, error) {
	logger := ctxlog.FromContext(ctx)
	var sum Summary

	paths, err := fsutil.FindFilesByExtension(opts.Dir, opts.Extension)
	if err != nil {
		return sum, fmt.Errorf("list sheet files: %w", err)
	}
	logger.Debug("Discovered sheet files.", "count", len(paths))

	for _, path := range paths {
		sheet := fsutil.SheetName(path, opts.Extension)
		rows, findings, err := scanFile(ctxlog.With(ctx, "sheet", sheet), path, sheet, opts)
		sum.Sheets++
		sum.Rows += rows
		sum.Findings += findings
		if err != nil {
			return sum, fmt.Errorf("scan %s: %w", path, err)
		}
	}

	if opts.Fonts != nil {
		if err := opts.Fonts.WriteUsage(); err != nil {
			return sum, err
		}
	}

	logger.Info("Scan finished.", "sheets", sum.Sheets, "rows", sum.Rows, "findings", sum.Findings)
	return sum, nil
}

func scanFile(ctx context.Context, path, sheet string, opts Options) (rows, findings int, err error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	ex := record.NewExtractor(f, opts.HeaderRows)
	for {
		rec, err := ex.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, findings, err
		}
		rows++

		n, err := opts.Engine.Apply(sheet, ex.Row(), rec, opts.Sink)
		findings += n
		if err != nil {
			return rows, findings, err
		}
	}

	logger.Debug("Sheet scanned.", "rows", rows, "findings", findings)
	return rows, findings, nil
}
