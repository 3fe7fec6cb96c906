package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// DefaultHeaderRows is the number of non-data rows at the top of every sheet.
const DefaultHeaderRows = 4

// columns is the number of positional fields a data row must provide.
const columns = 4

// ErrShortRow is returned for a data row with fewer than four columns.
var ErrShortRow = errors.New("row has fewer than 4 columns")

// Record is a single translation entry.
type Record struct {
	Path        string
	Original    string
	Translation string
	Metadata    string
}

// fromFields builds a Record from the first four fields of a row.
func fromFields(fields []string) (Record, error) {
	if len(fields) < columns {
		return Record{}, fmt.Errorf("%w: got %d", ErrShortRow, len(fields))
	}
	return Record{
		Path:        fields[0],
		Original:    fields[1],
		Translation: fields[2],
		Metadata:    fields[3],
	}, nil
}

// Extractor reads records from a sheet file in file order. It is not
// restartable.
type Extractor struct {
	r          *csv.Reader
	headerRows int
	skipped    bool
	row        int
}

// NewExtractor returns an Extractor that skips headerRows leading rows of r.
func NewExtractor(r io.Reader, headerRows int) *Extractor {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Extractor{r: cr, headerRows: headerRows, row: -1}
}

// Next returns the next record, or io.EOF once the data section is exhausted.
func (e *Extractor) Next() (Record, error) {
	if !e.skipped {
		e.skipped = true
		for i := 0; i < e.headerRows; i++ {
			if _, err := e.r.Read(); err != nil {
				if errors.Is(err, io.EOF) {
					return Record{}, io.EOF
				}
				return Record{}, fmt.Errorf("header row %d: %w", i, err)
			}
		}
	}

	fields, err := e.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("data row %d: %w", e.row+1, err)
	}
	e.row++

	rec, err := fromFields(fields)
	if err != nil {
		return Record{}, fmt.Errorf("data row %d: %w", e.row, err)
	}
	return rec, nil
}

// Row is the 0-based index, within the data section, of the record last
// returned by Next. It is -1 before the first record.
func (e *Extractor) Row() int {
	return e.row
}
