// Package tabular reads and writes rating columns as CSV with a header
// row. Empty fields are missing cells in both directions.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/quantfold/ratingkit/internal/series"
)

// ReadColumns parses CSV from r into one string column per header field.
func ReadColumns(r io.Reader) ([]series.Column[string], error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]series.Column[string], len(header))
	for i, name := range header {
		cols[i] = series.Column[string]{Name: name}
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		for i, field := range record {
			if field == "" {
				cols[i].Cells = append(cols[i].Cells, series.None[string]())
			} else {
				cols[i].Cells = append(cols[i].Cells, series.Some(field))
			}
		}
	}
	return cols, nil
}

// WriteColumns writes columns as CSV with a header row. All columns must
// have the same row count.
func WriteColumns(w io.Writer, cols []series.Column[string]) error {
	if len(cols) == 0 {
		return fmt.Errorf("no columns to write")
	}
	rows := cols[0].Len()
	for _, col := range cols[1:] {
		if col.Len() != rows {
			return fmt.Errorf("column %q has %d rows, want %d", col.Name, col.Len(), rows)
		}
	}

	writer := csv.NewWriter(w)
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for row := 0; row < rows; row++ {
		for i, col := range cols {
			if cell := col.Cells[row]; cell.Valid {
				record[i] = cell.Value
			} else {
				record[i] = ""
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ParseFloats converts a string column to floats, preserving missing
// cells.
func ParseFloats(col series.Column[string]) (series.Column[float64], error) {
	out := series.Column[float64]{Name: col.Name, Cells: make([]series.Cell[float64], col.Len())}
	for i, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		v, err := strconv.ParseFloat(cell.Value, 64)
		if err != nil {
			return series.Column[float64]{}, fmt.Errorf("column %q row %d: %w", col.Name, i, err)
		}
		out.Cells[i] = series.Some(v)
	}
	return out, nil
}

// FormatFloats converts a float column back to strings for CSV output.
func FormatFloats(col series.Column[float64]) series.Column[string] {
	out := series.Column[string]{Name: col.Name, Cells: make([]series.Cell[string], col.Len())}
	for i, cell := range col.Cells {
		if cell.Valid {
			out.Cells[i] = series.Some(strconv.FormatFloat(cell.Value, 'g', -1, 64))
		}
	}
	return out
}
