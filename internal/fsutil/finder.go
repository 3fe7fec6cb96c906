// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension lists the regular files directly inside dir whose name
// ends with the specified extension. Subdirectories are not descended into.
// The returned paths are joined with dir and sorted by file name.
func FindFilesByExtension(dir string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), extension) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// SheetName returns the logical sheet name for a sheet file: its base name
// without the extension.
func SheetName(path, extension string) string {
	return strings.TrimSuffix(filepath.Base(path), extension)
}
