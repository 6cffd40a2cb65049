package reactor

import (
	"errors"
	"fmt"
)

// Domain errors for reactor calculations.
var (
	// ErrNonPositiveTemperature indicates an absolute temperature <= 0 K.
	ErrNonPositiveTemperature = errors.New("reactor: absolute temperature must be positive")

	// ErrDispersionRange indicates a dimensionless variance outside the
	// validity range of the small-dispersion approximation.
	ErrDispersionRange = errors.New("reactor: dimensionless variance outside dispersion-model range")

	// ErrZeroLoading indicates tau*k*c0 = 0 at some step, which makes the
	// CSTR mass balance degenerate.
	ErrZeroLoading = errors.New("reactor: zero reactor loading (tau*k*c0 = 0)")

	// ErrNoRealSolution indicates a negative radicand in the CSTR mass
	// balance; the conversion has no real-valued solution.
	ErrNoRealSolution = errors.New("reactor: mass balance has no real solution")

	// ErrShortSeries indicates residence-time or concentration series
	// shorter than the requested step count.
	ErrShortSeries = errors.New("reactor: series shorter than step count")

	// ErrFlatCalibration indicates identical start and end conductivities,
	// which leave the calibration line undefined.
	ErrFlatCalibration = errors.New("reactor: calibration endpoints are identical")
)

// StepError wraps a domain error for one step of the conversion iterator,
// carrying the offending index and operands.
type StepError struct {
	Index    int
	Loading  float64 // a = tau*k*c0*60
	Radicand float64
	Wrapped  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (a=%g, radicand=%g): %s", e.Index, e.Loading, e.Radicand, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
