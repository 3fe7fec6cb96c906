package workbook

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vk/locsanity/internal/ctxlog"
	"github.com/vk/locsanity/internal/fsutil"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoSheets is returned by Combine when dir holds no sheet files.
	ErrNoSheets = errors.New("no sheet files found")
	// ErrSheetNameClash is returned by Combine when two sheet files differ
	// only by letter case. Workbook sheet names are case-insensitive.
	ErrSheetNameClash = errors.New("sheet names differ only by case")
	// ErrCellTooLong is returned by Combine for a value longer than a
	// workbook cell can hold.
	ErrCellTooLong = errors.New("cell value too long")
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// Combine reads every sheet file with extension ext in dir and writes them
// as sheets of a new workbook at workbookPath, ordered by sheet name.
func Combine(ctx context.Context, dir, ext, workbookPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Combining sheets.", "dir", dir, "workbook", workbookPath)

	paths, err := fsutil.FindFilesByExtension(dir, ext)
	if err != nil {
		return fmt.Errorf("list sheet files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w in %s", ErrNoSheets, dir)
	}

	sheets := make(map[string]string, len(paths))
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		name := fsutil.SheetName(p, ext)
		sheets[name] = p
		names = append(names, name)
	}
	sort.Strings(names)
	if err := checkNameClash(names); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("name sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %q: %w", name, err)
		}

		rows, err := readCSV(sheets[name])
		if err != nil {
			return fmt.Errorf("read sheet file %s: %w", sheets[name], err)
		}
		if err := writeRows(f, name, rows); err != nil {
			return fmt.Errorf("fill sheet %q: %w", name, err)
		}
		if err := setDimension(f, name, rows); err != nil {
			return fmt.Errorf("size sheet %q: %w", name, err)
		}
		logger.Info("Sheet added.", "sheet", name, "rows", len(rows))
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(workbookPath); err != nil {
		return fmt.Errorf("save workbook %s: %w", workbookPath, err)
	}
	return nil
}

func checkNameClash(names []string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q and %q", ErrSheetNameClash, prev, name)
		}
		seen[key] = name
	}
	return nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// writeRows stores every non-empty cell as a string, so numeric-looking text
// and leading '=' survive untouched.
func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			if n := utf8.RuneCountInString(value); n > excelize.TotalCellChars {
				return fmt.Errorf("%w: row %d column %d has %d characters, limit is %d",
					ErrCellTooLong, r+1, c+1, n, excelize.TotalCellChars)
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// setDimension records the sheet's full extent, trailing blank rows
// included, so Split can restore rows the workbook holds no cells for.
func setDimension(f *excelize.File, sheet string, rows [][]string) error {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if len(rows) == 0 || width == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(width, len(rows))
	if err != nil {
		return err
	}
	return f.SetSheetDimension(sheet, "A1:"+last)
}
