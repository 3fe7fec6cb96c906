package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/locsanity/internal/config"
)

func writeProject(t *testing.T, dir, src string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, `
header_rows    = 2
extension      = ".tsv"
ban_characters = "。"
error_log      = "out/errors.log"
workbook       = "${dir}/book.xlsx"

font "pixel" {
  path = "fonts/pixel.ttf"
}
font "fallback" {
  path = "/usr/share/fonts/fallback.ttf"
}

rules {
  autofill = false
}
`)

	p, err := NewLoader().Load(context.Background(), path, dir)
	require.NoError(t, err)

	assert.Equal(t, 2, p.HeaderRows)
	assert.Equal(t, ".tsv", p.Extension)
	assert.Equal(t, "。", p.BanCharacters)
	assert.Equal(t, filepath.Join(dir, "out", "errors.log"), p.ErrorLog)
	assert.Equal(t, filepath.Join(dir, "book.xlsx"), p.Workbook)
	assert.Equal(t, []config.Font{
		{Name: "pixel", Path: filepath.Join(dir, "fonts", "pixel.ttf")},
		{Name: "fallback", Path: "/usr/share/fonts/fallback.ttf"},
	}, p.Fonts)
	assert.False(t, p.Rules.Autofill)
	assert.True(t, p.Rules.TagParity, "unset toggles keep their default")
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "")

	p, err := NewLoader().Load(context.Background(), path, dir)
	require.NoError(t, err)

	want := config.Default(dir)
	want.Resolve()
	assert.Equal(t, want, p)
}

func TestLoad_ExplicitZeroHeaderRows(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "header_rows = 0\n")

	p, err := NewLoader().Load(context.Background(), path, dir)
	require.NoError(t, err)
	assert.Equal(t, 0, p.HeaderRows)
}

func TestLoad_FontCoverageOff(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "rules {\n  font_coverage = false\n}\n")

	p, err := NewLoader().Load(context.Background(), path, dir)
	require.NoError(t, err)
	assert.False(t, p.Rules.FontCoverage)
	assert.True(t, p.Rules.Autofill)
}

func TestLoad_EnvFunction(t *testing.T) {
	t.Setenv("LOCSANITY_TEST_LOG", "/tmp/custom.log")
	dir := t.TempDir()
	path := writeProject(t, dir, `error_log = env("LOCSANITY_TEST_LOG")`)

	p, err := NewLoader().Load(context.Background(), path, dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.log", p.ErrorLog)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"syntax error", "header_rows = ", "failed to parse"},
		{"unknown attribute", "colour = \"red\"\n", "failed to decode"},
		{"wrong type", "header_rows = \"four\"\n", "failed to decode"},
		{"font missing path", "font \"x\" {}\n", "failed to decode"},
		{"invalid value", "header_rows = -3\n", "invalid project configuration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeProject(t, dir, tt.src)

			_, err := NewLoader().Load(context.Background(), path, dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLoader().Load(context.Background(), filepath.Join(dir, "nope.hcl"), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
