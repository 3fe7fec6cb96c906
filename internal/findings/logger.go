// Package findings writes validation findings as human-readable blocks to the
// error log and to standard output.
package findings

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/locsanity/internal/ctxlog"
	"github.com/vk/locsanity/internal/rules"
)

// Logger is a rules.Sink that prints every finding to all of its writers.
type Logger struct {
	ctx   context.Context
	w     io.Writer
	count int
}

// New returns a Logger writing to every given writer.
func New(ctx context.Context, writers ...io.Writer) *Logger {
	return &Logger{ctx: ctx, w: io.MultiWriter(writers...)}
}

// Open truncates (or creates) the error log at path and returns a Logger that
// writes to it and to echo. The caller must Close the returned file.
func Open(ctx context.Context, path string, echo io.Writer) (*Logger, *os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create error log: %w", err)
	}
	return New(ctx, echo, f), f, nil
}

// Report implements rules.Sink.
func (l *Logger) Report(f rules.Finding) error {
	ctxlog.FromContext(l.ctx).Debug("Finding reported.", "sheet", f.Sheet, "row", f.Row, "message", f.Message)

	var sb strings.Builder
	sb.WriteString(f.Message)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%d\n", f.Row)
	sb.WriteString("Original:\n")
	sb.WriteString(indent(f.Record.Original, "  "))
	sb.WriteByte('\n')
	sb.WriteString("Translation:\n")
	sb.WriteString(indent(f.Record.Translation, "  "))
	sb.WriteByte('\n')

	if _, err := io.WriteString(l.w, sb.String()); err != nil {
		return fmt.Errorf("write finding: %w", err)
	}
	l.count++
	return nil
}

// Count is the number of findings written so far.
func (l *Logger) Count() int {
	return l.count
}

// indent prefixes every line of s that has non-whitespace content.
func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			sb.WriteString(prefix)
		}
		sb.WriteString(line)
	}
	return sb.String()
}
