// Package rtd derives residence-time-distribution statistics from a
// measured tracer response curve.
//
// The raw signal is first normalized into the distribution function E(t)
// whose integral over the sampling window is 1; the first and second
// moments of E(t) then give the mean residence time and the variance of
// the distribution. All functions leave their inputs untouched.
package rtd

import (
	"math"

	"github.com/m-wiedmann/rtdlab/internal/numeric"
)

// Moments holds the statistical moments of a normalized response curve.
type Moments struct {
	Mean            float64 // first moment, mean residence time
	SecondMoment    float64
	Variance        float64
	Sigma           float64
	DimlessVariance float64 // variance / mean^2
}

// Normalize divides the raw signal by its integral over t so that the
// result integrates to 1. Fails when the raw curve integrates to zero.
func Normalize(t, e []float64) ([]float64, error) {
	area, err := numeric.Trapezoid(t, e)
	if err != nil {
		return nil, err
	}
	if area == 0 {
		return nil, ErrZeroIntegral
	}

	norm := make([]float64, len(e))
	for i, v := range e {
		norm[i] = v / area
	}
	return norm, nil
}

// Analyze normalizes the raw response curve and computes its moment set.
// The normalized curve is returned alongside the moments.
func Analyze(t, e []float64) (*Moments, []float64, error) {
	norm, err := Normalize(t, e)
	if err != nil {
		return nil, nil, err
	}

	weighted := make([]float64, len(norm))
	for i := range norm {
		weighted[i] = norm[i] * t[i]
	}
	mu1, err := numeric.Trapezoid(t, weighted)
	if err != nil {
		return nil, nil, err
	}
	if mu1 == 0 {
		return nil, nil, ErrZeroMean
	}

	for i := range norm {
		weighted[i] = norm[i] * t[i] * t[i]
	}
	mu2, err := numeric.Trapezoid(t, weighted)
	if err != nil {
		return nil, nil, err
	}

	variance := mu2 - mu1*mu1
	if variance < 0 {
		return nil, nil, &VarianceError{Mu1: mu1, Mu2: mu2}
	}

	return &Moments{
		Mean:            mu1,
		SecondMoment:    mu2,
		Variance:        variance,
		Sigma:           math.Sqrt(variance),
		DimlessVariance: variance / (mu1 * mu1),
	}, norm, nil
}
