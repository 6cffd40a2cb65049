package dataio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/m-wiedmann/rtdlab/internal/numeric"
)

// WriteTable serializes named float columns as delimited text, one header
// row followed by data rows. All series must have the same length.
func WriteTable(w io.Writer, sep rune, names []string, series ...[]float64) error {
	for i := 1; i < len(series); i++ {
		if len(series[i]) != len(series[0]) {
			return &numeric.LengthError{XLen: len(series[0]), YLen: len(series[i])}
		}
	}

	cw := csv.NewWriter(w)
	cw.Comma = sep
	defer cw.Flush()

	if err := cw.Write(names); err != nil {
		return err
	}

	if len(series) == 0 {
		return cw.Error()
	}
	row := make([]string, len(series))
	for i := range series[0] {
		for j := range series {
			row[j] = strconv.FormatFloat(series[j][i], 'f', 6, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, creating or truncating it.
func WriteFile(path string, sep rune, names []string, series ...[]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTable(f, sep, names, series...)
}
