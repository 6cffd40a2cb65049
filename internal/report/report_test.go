package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-wiedmann/rtdlab/internal/numeric"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{
		{Label: "mean residence time", Value: 12.5},
		{Label: "dispersion number", Value: 0.051777},
	}

	err := Print(&buf, "analysis", entries, []float64{0, 1}, []float64{1.0, 0.5})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "analysis")
	assert.Contains(t, out, "mean residence time")
	assert.Contains(t, out, "12.500000")
	assert.Contains(t, out, "0.051777")
	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "1.0000")
}

func TestPrintNoSeries(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, "", []Entry{{Label: "k", Value: 1}}, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1.000000")
	assert.NotContains(t, buf.String(), "TIME")
}

func TestPrintLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, "", nil, []float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, numeric.ErrLengthMismatch)
}
