package plot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-wiedmann/rtdlab/internal/numeric"
)

func TestRenderTerminal(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}

	out, err := Render(x, y, Options{Title: "tracer response", Label: "E(t)"})
	require.NoError(t, err)
	assert.Contains(t, out, "tracer response")
	assert.Contains(t, out, "E(t)")
}

func TestRenderSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.svg")
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 2, 1, 3}

	_, err := Render(x, y, Options{
		Title:     "curve",
		XLabel:    "t / min",
		YLabel:    "E(t)",
		Grid:      true,
		Marker:    "o",
		LineStyle: "--",
		FilePath:  path,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	svg := string(data)

	assert.True(t, strings.HasPrefix(svg, `<?xml`))
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "stroke-dasharray")
	assert.Contains(t, svg, "<circle")
	assert.Contains(t, svg, "t / min")
}

func TestRenderLengthMismatch(t *testing.T) {
	_, err := Render([]float64{0, 1}, []float64{0}, Options{})
	assert.ErrorIs(t, err, numeric.ErrLengthMismatch)
}
