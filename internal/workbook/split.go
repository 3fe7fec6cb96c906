package workbook

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/locsanity/internal/ctxlog"
	"github.com/xuri/excelize/v2"
)

// Split writes one CSV file per sheet of the workbook at workbookPath into
// dir and returns the written paths in sheet order.
func Split(ctx context.Context, workbookPath, dir, ext string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Splitting workbook.", "workbook", workbookPath, "dir", dir)

	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", workbookPath, err)
	}
	defer f.Close()

	var written []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return written, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		rows, err = extend(f, sheet, rows)
		if err != nil {
			return written, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		path := filepath.Join(dir, sheet+ext)
		if err := writeCSV(path, pad(rows)); err != nil {
			return written, fmt.Errorf("write sheet %q: %w", sheet, err)
		}
		logger.Info("Sheet written.", "sheet", sheet, "rows", len(rows), "path", path)
		written = append(written, path)
	}
	return written, nil
}

// extend appends the blank rows the workbook reader drops from the end of a
// sheet, up to the last row of the sheet's recorded dimension.
func extend(f *excelize.File, sheet string, rows [][]string) ([][]string, error) {
	ref, err := f.GetSheetDimension(sheet)
	if err != nil {
		return nil, err
	}
	if ref == "" {
		return rows, nil
	}
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		ref = ref[i+1:]
	}
	_, height, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return nil, fmt.Errorf("sheet dimension %q: %w", ref, err)
	}
	for len(rows) < height {
		rows = append(rows, nil)
	}
	return rows, nil
}

// pad extends every row to the width of the widest one. The workbook reader
// drops trailing empty cells of each row.
func pad(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}

func writeCSV(path string, rows [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
