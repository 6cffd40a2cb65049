package numeric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrapezoidDegenerate(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{1.0}, []float64{5.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Trapezoid(tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, 0.0, got)
		})
	}
}

func TestTrapezoidConstant(t *testing.T) {
	// y = 3 over [0, 4] integrates to 12 exactly.
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{3, 3, 3, 3, 3}

	got, err := Trapezoid(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, 1e-12)
}

func TestTrapezoidLinear(t *testing.T) {
	// y = x over [0, 2]: trapezoids are exact for linear functions.
	x := []float64{0, 0.5, 1, 1.5, 2}
	y := []float64{0, 0.5, 1, 1.5, 2}

	got, err := Trapezoid(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)
}

func TestTrapezoidAntisymmetric(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 4, 2, 5}

	fwd, err := Trapezoid(x, y)
	require.NoError(t, err)

	xr := []float64{3, 2, 1, 0}
	yr := []float64{5, 2, 4, 1}
	rev, err := Trapezoid(xr, yr)
	require.NoError(t, err)

	assert.InDelta(t, -fwd, rev, 1e-12)
}

func TestTrapezoidLengthMismatch(t *testing.T) {
	_, err := Trapezoid([]float64{0, 1, 2}, []float64{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	var lenErr *LengthError
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 3, lenErr.XLen)
	assert.Equal(t, 2, lenErr.YLen)
}

func TestDiff(t *testing.T) {
	x := []float64{0, 1, 3, 6}
	y := []float64{10, 8, 5, 5}

	dx, dy, err := Diff(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, dx)
	assert.Equal(t, []float64{-2, -3, 0}, dy)
}

func TestDiffLengthMismatch(t *testing.T) {
	_, _, err := Diff([]float64{0, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDiffShort(t *testing.T) {
	dx, dy, err := Diff([]float64{1}, []float64{2})
	require.NoError(t, err)
	assert.Empty(t, dx)
	assert.Empty(t, dy)
}
