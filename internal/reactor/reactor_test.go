package reactor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateConstantZeroActivationEnergy(t *testing.T) {
	// With Ea = 0 the exponential is 1 for any temperature.
	for _, temp := range []float64{1, 300, 1000} {
		k, err := Arrhenius{K0: 2.5e7, Ea: 0, Temperature: temp}.RateConstant()
		require.NoError(t, err)
		assert.InDelta(t, 2.5e7, k, 1e-6)
	}
}

func TestRateConstant(t *testing.T) {
	a := Arrhenius{K0: 1e8, Ea: 75000, Temperature: 350}
	k, err := a.RateConstant()
	require.NoError(t, err)

	want := 1e8 * math.Exp(-75000/(GasConstant*350))
	assert.InDelta(t, want, k, want*1e-12)
	assert.Greater(t, k, 0.0)
}

func TestRateConstantInvalidTemperature(t *testing.T) {
	for _, temp := range []float64{0, -273.15} {
		_, err := Arrhenius{K0: 1, Ea: 100, Temperature: temp}.RateConstant()
		assert.ErrorIs(t, err, ErrNonPositiveTemperature)
	}
}

func TestDispersionNumberZero(t *testing.T) {
	d, err := DispersionNumber(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDispersionNumberSmall(t *testing.T) {
	// For small variance the relation is close to sigma^2/2.
	d, err := DispersionNumber(0.125)
	require.NoError(t, err)
	assert.InDelta(t, (-2+math.Sqrt(4+32*0.125))/16, d, 1e-12)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 1.0)
}

func TestDispersionNumberOutOfRange(t *testing.T) {
	_, err := DispersionNumber(-0.01)
	assert.ErrorIs(t, err, ErrDispersionRange)

	// sigma^2 >= 10 would put D/uL at or beyond 1.
	_, err = DispersionNumber(10)
	assert.ErrorIs(t, err, ErrDispersionRange)
}

func TestEffectiveVolume(t *testing.T) {
	assert.InDelta(t, 7.5, EffectiveVolume(15, 0.5), 1e-12)
}

func TestConversionSeries(t *testing.T) {
	k, err := Arrhenius{K0: 1e8, Ea: 75000, Temperature: 350}.RateConstant()
	require.NoError(t, err)

	tau := []float64{10, 20}
	c0 := []float64{1.0, 0.8}

	f, err := ConversionSeries(tau, k, c0, 2)
	require.NoError(t, err)

	require.Len(t, f, 3)
	assert.Equal(t, 0.0, f[0])
	for i := 1; i < len(f); i++ {
		assert.Greater(t, f[i], 0.0, "f[%d]", i)
		assert.Less(t, f[i], 1.0, "f[%d]", i)
		assert.GreaterOrEqual(t, f[i], f[i-1], "f[%d] must not decrease", i)
	}
}

func TestConversionSeriesDoesNotMutateInput(t *testing.T) {
	tau := []float64{10, 20, 30}
	c0 := []float64{1.0, 0.8}

	_, err := ConversionSeries(tau, 1e-3, c0, 3)
	require.NoError(t, err)

	// The iterator works on its own copy; the caller's series must come
	// back untouched.
	assert.Equal(t, []float64{1.0, 0.8}, c0)
	assert.Equal(t, []float64{10, 20, 30}, tau)
}

func TestConversionSeriesZeroLoading(t *testing.T) {
	_, err := ConversionSeries([]float64{10, 0, 30}, 1e-3, []float64{1, 1, 1}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroLoading)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, 1, stepErr.Index)
	assert.NotContains(t, err.Error(), "NaN")
}

func TestConversionSeriesShortInput(t *testing.T) {
	_, err := ConversionSeries([]float64{10}, 1e-3, []float64{1}, 2)
	assert.ErrorIs(t, err, ErrShortSeries)

	_, err = ConversionSeries([]float64{10, 20}, 1e-3, nil, 2)
	assert.ErrorIs(t, err, ErrShortSeries)
}

func TestConversionStepNoRealSolution(t *testing.T) {
	// A strongly negative loading drives the radicand below zero.
	_, err := ConversionStep(-10, 1, 1, 0, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRealSolution)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, 4, stepErr.Index)
	assert.Negative(t, stepErr.Radicand)
}

func TestConcentrationFromConductivity(t *testing.T) {
	// Endpoints map onto the calibration concentrations.
	got, err := ConcentrationFromConductivity(1.0, 0.2, 50, 10, []float64{50, 30, 10})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0, 0.6, 0.2}, got, 1e-12)
}

func TestConcentrationFromConductivityFlat(t *testing.T) {
	_, err := ConcentrationFromConductivity(1, 0, 5, 5, []float64{5})
	assert.ErrorIs(t, err, ErrFlatCalibration)
}
