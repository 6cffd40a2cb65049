// Package report prints human-readable analysis results: labeled scalars
// followed by the time/concentration table.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/m-wiedmann/rtdlab/internal/numeric"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Entry is one labeled scalar result. Entries are printed in order, so
// callers control the layout.
type Entry struct {
	Label string
	Value float64
}

// Print writes the scalar block and, when the series are non-empty, the
// time/concentration table. times and conc must have equal length.
func Print(w io.Writer, title string, entries []Entry, times, conc []float64) error {
	if len(times) != len(conc) {
		return &numeric.LengthError{XLen: len(times), YLen: len(conc)}
	}

	if title != "" {
		fmt.Fprintln(w, headerStyle.Render(title))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render(e.Label), valueStyle.Render(fmt.Sprintf("%.6f", e.Value)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(times) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("TIME")+"\t"+headerStyle.Render("CONCENTRATION"))
	for i := range times {
		fmt.Fprintf(tw, "%.4f\t%.6f\n", times[i], conc[i])
	}
	return tw.Flush()
}
