package rtd

// FractionOfFinal scales every element by the final value of the series,
// so the last element of the result is 1. Useful for step-response curves
// that saturate toward an end value.
func FractionOfFinal(v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, ErrEmptySeries
	}
	last := v[len(v)-1]
	if last == 0 {
		return nil, ErrZeroFinalValue
	}

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / last
	}
	return out, nil
}

// ComplementOfFinal returns 1 - v[i]/v[last]: the remaining distance of
// each element to the end value. The last element of the result is 0.
func ComplementOfFinal(v []float64) ([]float64, error) {
	out, err := FractionOfFinal(v)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = 1 - out[i]
	}
	return out, nil
}
