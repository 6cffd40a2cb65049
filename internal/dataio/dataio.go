// Package dataio loads delimited measurement files into typed columns and
// writes numeric tables back out. Cells are parsed as floats when
// possible and kept as text otherwise, so instrument exports with unit
// rows or annotations survive loading.
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrNoData indicates a source with no data rows after skipping.
	ErrNoData = errors.New("dataio: no data rows")

	// ErrColumnNotNumeric indicates a column access that expected floats
	// but hit a text cell.
	ErrColumnNotNumeric = errors.New("dataio: column contains non-numeric cells")
)

// Options controls how a delimited source is read.
type Options struct {
	Separator rune // field separator, ';' when zero
	SkipRows  int  // leading rows to drop before anything else
	HeaderRow int  // row index (after skipping) holding column names; -1 for none
}

// Cell is one parsed value: a float when Numeric, raw text otherwise.
type Cell struct {
	Number  float64
	Text    string
	Numeric bool
}

// Column is a named sequence of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// Floats returns the column as a float slice, failing on the first text
// cell.
func (c Column) Floats() ([]float64, error) {
	out := make([]float64, len(c.Cells))
	for i, cell := range c.Cells {
		if !cell.Numeric {
			return nil, fmt.Errorf("%w: %q at row %d of column %q", ErrColumnNotNumeric, cell.Text, i, c.Name)
		}
		out[i] = cell.Number
	}
	return out, nil
}

// Read parses a delimited source into columns.
func Read(r io.Reader, opts Options) ([]Column, error) {
	sep := opts.Separator
	if sep == 0 {
		sep = ';'
	}

	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	if opts.SkipRows >= len(records) {
		return nil, ErrNoData
	}
	records = records[opts.SkipRows:]

	var names []string
	if opts.HeaderRow >= 0 {
		if opts.HeaderRow >= len(records) {
			return nil, ErrNoData
		}
		names = records[opts.HeaderRow]
		records = append(records[:opts.HeaderRow], records[opts.HeaderRow+1:]...)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	cols := make([]Column, width)
	for i := range cols {
		if i < len(names) {
			cols[i].Name = names[i]
		} else {
			cols[i].Name = fmt.Sprintf("col%d", i)
		}
	}

	for _, rec := range records {
		for i := 0; i < width; i++ {
			var raw string
			if i < len(rec) {
				raw = rec[i]
			}
			if num, err := strconv.ParseFloat(raw, 64); err == nil {
				cols[i].Cells = append(cols[i].Cells, Cell{Number: num, Numeric: true})
			} else {
				cols[i].Cells = append(cols[i].Cells, Cell{Text: raw})
			}
		}
	}
	return cols, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts Options) ([]Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opts)
}
