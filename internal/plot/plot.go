// Package plot renders x/y series as terminal charts and optionally
// persists them as SVG. One Options struct covers both targets.
package plot

import (
	"fmt"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/m-wiedmann/rtdlab/internal/numeric"
)

// Options enumerates the recognized display settings.
type Options struct {
	Title     string
	XLabel    string
	YLabel    string
	Grid      bool
	Marker    string // SVG point marker: "o" for circles, "" for none
	LineStyle string // SVG stroke: "-", "--" or ":"
	Label     string // legend label for the series
	FilePath  string // when set, an SVG is written here
	Show      bool   // when set, the terminal chart is printed to stdout
}

const (
	chartWidth  = 80
	chartHeight = 12
)

// Render draws the series. It returns the terminal chart (printing it
// when opts.Show is set) and writes an SVG when opts.FilePath is set.
func Render(x, y []float64, opts Options) (string, error) {
	if len(x) != len(y) {
		return "", &numeric.LengthError{XLen: len(x), YLen: len(y)}
	}
	if len(y) == 0 {
		return "", fmt.Errorf("plot: no data")
	}

	var sb strings.Builder
	if opts.Title != "" {
		sb.WriteString(opts.Title + "\n")
	}
	if opts.YLabel != "" {
		sb.WriteString(opts.YLabel + "\n")
	}

	caption := opts.Label
	if caption == "" {
		caption = opts.XLabel
	} else if opts.XLabel != "" {
		caption = fmt.Sprintf("%s (%s)", opts.Label, opts.XLabel)
	}
	sb.WriteString(asciigraph.Plot(y,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")

	out := sb.String()
	if opts.Show {
		fmt.Print(out)
	}

	if opts.FilePath != "" {
		svg := toSVG(x, y, opts)
		if err := os.WriteFile(opts.FilePath, []byte(svg), 0644); err != nil {
			return out, err
		}
	}
	return out, nil
}
