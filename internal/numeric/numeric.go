package numeric

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates x and y series of different lengths.
var ErrLengthMismatch = errors.New("numeric: x and y must have the same length")

// LengthError reports the mismatched lengths of a sample series.
type LengthError struct {
	XLen, YLen int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("numeric: length mismatch (x has %d points, y has %d)", e.XLen, e.YLen)
}

func (e *LengthError) Unwrap() error {
	return ErrLengthMismatch
}

// Trapezoid approximates the definite integral of a discretely sampled
// function y(x) with the trapezoidal rule. x must be monotonic; for
// descending x each interval contributes with negative sign, so the result
// is signed. Fewer than 2 points integrate to exactly zero.
func Trapezoid(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, &LengthError{XLen: len(x), YLen: len(y)}
	}
	if len(x) < 2 {
		return 0, nil
	}

	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		sum += (x[i+1] - x[i]) * (y[i] + y[i+1]) / 2
	}
	return sum, nil
}

// Diff returns the consecutive forward differences of both series.
// The outputs have length n-1.
func Diff(x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, &LengthError{XLen: len(x), YLen: len(y)}
	}
	if len(x) < 2 {
		return nil, nil, nil
	}

	dx := make([]float64, len(x)-1)
	dy := make([]float64, len(y)-1)
	for i := 0; i < len(x)-1; i++ {
		dx[i] = x[i+1] - x[i]
		dy[i] = y[i+1] - y[i]
	}
	return dx, dy, nil
}
