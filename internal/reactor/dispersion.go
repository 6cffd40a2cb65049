package reactor

import "math"

// DispersionNumber inverts the open-vessel dispersion-model variance
// relation with the closed-form approximation
//
//	D/uL = (-2 + sqrt(4 + 32*sigma^2)) / 16
//
// The approximation holds for small to moderate axial dispersion; the
// physically meaningful result range is [0, 1). Inputs that land outside
// it (negative variance, or variance >= 10 which would give D/uL >= 1)
// are rejected instead of extrapolated.
func DispersionNumber(dimlessVariance float64) (float64, error) {
	if dimlessVariance < 0 {
		return 0, ErrDispersionRange
	}

	d := (-2 + math.Sqrt(4+32*dimlessVariance)) / 16
	if d >= 1 {
		return 0, ErrDispersionRange
	}
	return d, nil
}

// EffectiveVolume is the reactor volume actually traversed by the flow:
// mean residence time times volumetric flow rate.
func EffectiveVolume(meanResidenceTime, flowRate float64) float64 {
	return meanResidenceTime * flowRate
}
