package generator

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dlviewer/dlviewer/internal/domain/license"
)

// WriteCSV writes the fixed header followed by one line per entry.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(license.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(e.Row()); err != nil {
			return fmt.Errorf("write entry %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a previously written CSV for upload. The first line is taken
// as a header and dropped unless it is the only line.
func ReadCSV(r io.Reader) ([][]interface{}, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) > 1 {
		records = records[1:]
	}
	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		row := make([]interface{}, len(rec))
		for j, cell := range rec {
			row[j] = cell
		}
		rows[i] = row
	}
	return rows, nil
}

// SheetRows converts entries to spreadsheet values.
func SheetRows(entries []Entry) [][]interface{} {
	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		rows[i] = e.SheetRow()
	}
	return rows
}

// Appender writes rows to a spreadsheet tab.
type Appender interface {
	NextRow(ctx context.Context, sheetID, sheet string) (int, error)
	Append(ctx context.Context, sheetID, sheet string, startRow int, rows [][]interface{}) (int64, error)
}

// UploadResult reports where an upload landed.
type UploadResult struct {
	StartRow     int
	Rows         int
	UpdatedCells int64
}

// Upload appends rows after the last used row of sheet, leaving existing data
// in place.
func Upload(ctx context.Context, a Appender, sheetID, sheet string, rows [][]interface{}) (UploadResult, error) {
	next, err := a.NextRow(ctx, sheetID, sheet)
	if err != nil {
		return UploadResult{}, fmt.Errorf("find next row: %w", err)
	}
	cells, err := a.Append(ctx, sheetID, sheet, next, rows)
	if err != nil {
		return UploadResult{}, fmt.Errorf("append at row %d: %w", next, err)
	}
	return UploadResult{StartRow: next, Rows: len(rows), UpdatedCells: cells}, nil
}
