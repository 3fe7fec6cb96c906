package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "notes.txt", "c.csv.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.csv", "d.csv"), nil, 0o644))

	files, err := FindFilesByExtension(dir, ".csv")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
	}, files)
}

func TestFindFilesByExtension_MissingDir(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".csv")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Dialogue", SheetName("/data/Dialogue.csv", ".csv"))
	assert.Equal(t, "menu.v2", SheetName("menu.v2.csv", ".csv"))
}
