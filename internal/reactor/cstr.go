package reactor

import "math"

// MinutesToSeconds converts residence times given in minutes to the
// seconds base of the rate constant. It is part of the mass-balance
// contract, not a tunable.
const MinutesToSeconds = 60.0

// ConversionStep solves the single-CSTR mass balance for one residence
// time: given the loading a = tau*k*c0*60 and the previous conversion,
//
//	F = (1 + 2a - sqrt(1 + 4a*(1 - Fprev))) / (2a)
//
// The step index is only used for error reporting.
func ConversionStep(tau, k, c0, prev float64, index int) (float64, error) {
	a := tau * k * c0 * MinutesToSeconds
	if a == 0 {
		return 0, &StepError{Index: index, Loading: a, Wrapped: ErrZeroLoading}
	}

	radicand := 1 + 4*a*(1-prev)
	if radicand < 0 {
		return 0, &StepError{Index: index, Loading: a, Radicand: radicand, Wrapped: ErrNoRealSolution}
	}

	return (1 + 2*a - math.Sqrt(radicand)) / (2 * a), nil
}

// ConversionSeries chains n ideal CSTRs across a residence-time
// discretization. Step i reads tau[i] and the current concentration,
// computes the next conversion degree, and feeds the scaled outlet
// concentration F*c[i] into the following step.
//
// The caller's concentration series is copied on entry; the working copy
// grows by one element per step and the input is never touched. The
// result has length n+1 and starts with the seed F[0] = 0.
func ConversionSeries(tau []float64, k float64, c0 []float64, n int) ([]float64, error) {
	if len(tau) < n || len(c0) == 0 {
		return nil, ErrShortSeries
	}

	c := make([]float64, len(c0), len(c0)+n)
	copy(c, c0)

	f := make([]float64, 1, n+1)
	for i := 0; i < n; i++ {
		next, err := ConversionStep(tau[i], k, c[i], f[i], i)
		if err != nil {
			return nil, err
		}
		f = append(f, next)
		c = append(c, next*c[i])
	}
	return f, nil
}
