package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-wiedmann/rtdlab/internal/reactor"
	"github.com/m-wiedmann/rtdlab/internal/rtd"
)

func testParams() Params {
	return Params{
		FlowRate:          0.5,
		FeedConcentration: 1.0,
		Kinetics:          reactor.Arrhenius{K0: 1e8, Ea: 75000, Temperature: 350},
	}
}

func TestRunPipeline(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	signal := []float64{0, 1, 2, 1, 0}

	res, err := Run(times, signal, testParams())
	require.NoError(t, err)

	assert.InDelta(t, 2.0, res.Moments.Mean, 1e-12)
	assert.InDelta(t, 1.0, res.EffectiveVolume, 1e-12)
	assert.Greater(t, res.Dispersion, 0.0)
	assert.Less(t, res.Dispersion, 1.0)
	assert.Greater(t, res.RateConstant, 0.0)
	assert.Greater(t, res.Conversion, 0.0)
	assert.Less(t, res.Conversion, 1.0)

	for _, key := range []string{
		"mean_residence_time", "variance", "sigma", "dimensionless_variance",
		"dispersion_number", "effective_volume", "rate_constant", "conversion",
	} {
		_, ok := res.Metrics[key]
		assert.True(t, ok, "missing metric %q", key)
	}
	assert.Equal(t, res.Moments.Mean, res.Metrics["mean_residence_time"])
}

func TestRunOwnsItsSeries(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	signal := []float64{0, 1, 2, 1, 0}

	res, err := Run(times, signal, testParams())
	require.NoError(t, err)

	res.Times[0] = 99
	res.Signal[0] = 99
	assert.Equal(t, 0.0, times[0])
	assert.Equal(t, 0.0, signal[0])
}

func TestRunPropagatesDomainErrors(t *testing.T) {
	times := []float64{0, 1, 2}

	_, err := Run(times, []float64{0, 0, 0}, testParams())
	assert.ErrorIs(t, err, rtd.ErrZeroIntegral)

	p := testParams()
	p.Kinetics.Temperature = -1
	_, err = Run(times, []float64{0, 1, 0}, p)
	assert.ErrorIs(t, err, reactor.ErrNonPositiveTemperature)

	p = testParams()
	p.FeedConcentration = 0
	_, err = Run(times, []float64{0, 1, 0}, p)
	assert.ErrorIs(t, err, reactor.ErrZeroLoading)
}
