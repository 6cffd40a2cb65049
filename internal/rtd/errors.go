package rtd

import (
	"errors"
	"fmt"
)

// Domain errors for residence-time-distribution analysis.
var (
	// ErrZeroIntegral indicates a response curve that integrates to zero,
	// so it cannot be normalized.
	ErrZeroIntegral = errors.New("rtd: response curve integrates to zero")

	// ErrZeroMean indicates a zero mean residence time, which makes the
	// dimensionless variance undefined.
	ErrZeroMean = errors.New("rtd: mean residence time is zero")

	// ErrNegativeVariance indicates mu2 < mu1^2. This is a data-quality
	// signal (numerical error in the measured curve), not a valid variance.
	ErrNegativeVariance = errors.New("rtd: negative variance")

	// ErrEmptySeries indicates an empty input series.
	ErrEmptySeries = errors.New("rtd: empty series")

	// ErrZeroFinalValue indicates a series whose last element is zero and
	// cannot be scaled by its final value.
	ErrZeroFinalValue = errors.New("rtd: final value of series is zero")
)

// VarianceError carries the moments that produced a negative variance.
type VarianceError struct {
	Mu1, Mu2 float64
}

func (e *VarianceError) Error() string {
	return fmt.Sprintf("rtd: negative variance (mu1=%g, mu2=%g)", e.Mu1, e.Mu2)
}

func (e *VarianceError) Unwrap() error {
	return ErrNegativeVariance
}
