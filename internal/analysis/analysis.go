// Package analysis runs the full tracer-response pipeline: normalization,
// moment statistics, dispersion and volume metrics, and an ideal-CSTR
// conversion estimate from Arrhenius kinetics.
package analysis

import (
	"github.com/m-wiedmann/rtdlab/internal/reactor"
	"github.com/m-wiedmann/rtdlab/internal/rtd"
)

// Params configures one analysis run. All fields are inputs only.
type Params struct {
	FlowRate          float64 // volumetric flow rate
	FeedConcentration float64 // inlet concentration for the conversion estimate
	Kinetics          reactor.Arrhenius
}

// Result holds everything one run produces. Metrics mirrors the scalar
// fields under stable labels for reporting and storage.
type Result struct {
	Times      []float64
	Signal     []float64
	Normalized []float64

	Moments         rtd.Moments
	Dispersion      float64
	EffectiveVolume float64
	RateConstant    float64
	Conversion      float64

	Metrics map[string]float64
}

// Run executes the pipeline on a measured (t, signal) series. Inputs are
// not mutated; the result owns its series.
func Run(times, signal []float64, p Params) (*Result, error) {
	moments, norm, err := rtd.Analyze(times, signal)
	if err != nil {
		return nil, err
	}

	dispersion, err := reactor.DispersionNumber(moments.DimlessVariance)
	if err != nil {
		return nil, err
	}

	k, err := p.Kinetics.RateConstant()
	if err != nil {
		return nil, err
	}

	// Conversion estimate: one CSTR mass-balance step with the mean
	// residence time as tau and the configured feed concentration.
	conversion, err := reactor.ConversionStep(moments.Mean, k, p.FeedConcentration, 0, 0)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Times:           cloneFloats(times),
		Signal:          cloneFloats(signal),
		Normalized:      norm,
		Moments:         *moments,
		Dispersion:      dispersion,
		EffectiveVolume: reactor.EffectiveVolume(moments.Mean, p.FlowRate),
		RateConstant:    k,
		Conversion:      conversion,
	}
	res.Metrics = map[string]float64{
		"mean_residence_time":    moments.Mean,
		"variance":               moments.Variance,
		"sigma":                  moments.Sigma,
		"dimensionless_variance": moments.DimlessVariance,
		"dispersion_number":      dispersion,
		"effective_volume":       res.EffectiveVolume,
		"rate_constant":          k,
		"conversion":             conversion,
	}
	return res, nil
}

func cloneFloats(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
