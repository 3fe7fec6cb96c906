// Package testutil holds fixtures shared by the package tests: sheet file
// writers, a fake glyph table and a thread-safe log buffer.
package testutil

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Header is the four non-data rows every sheet file starts with, padded to
// the sheet's width the way spreadsheet exports write them.
var Header = [][]string{
	{"# format", "", "", ""},
	{"config", "", "", ""},
	{"value", "", "", ""},
	{"path", "original", "translation", "metadata"},
}

// WriteSheet writes a sheet file named name into dir: the standard header
// followed by the given data rows. It returns the file path.
func WriteSheet(t *testing.T, dir, name string, rows ...[]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll(append(append([][]string{}, Header...), rows...)))
	return path
}

// WriteFiles writes raw files relative to dir, creating subdirectories.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// RuneSet is a glyph table that supports exactly the runes in the string.
type RuneSet string

// HasRune implements fontindex.GlyphTable.
func (s RuneSet) HasRune(r rune) bool {
	return strings.ContainsRune(string(s), r)
}

// Covers implements rules.Coverage.
func (s RuneSet) Covers(r rune) bool {
	return s.HasRune(r)
}
