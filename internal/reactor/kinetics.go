// Package reactor maps residence-time statistics onto reactor metrics:
// dispersion number, effective volume, Arrhenius kinetics and ideal-CSTR
// conversion estimates.
package reactor

import "math"

// GasConstant is the universal gas constant in J/(mol*K).
const GasConstant = 8.314

// Arrhenius holds the kinetic parameters of a reaction.
type Arrhenius struct {
	K0          float64 // pre-exponential factor
	Ea          float64 // activation energy, J/mol
	Temperature float64 // absolute temperature, K
}

// RateConstant evaluates k = k0 * exp(-Ea / (R*T)).
// Fails for non-positive absolute temperatures.
func (a Arrhenius) RateConstant() (float64, error) {
	if a.Temperature <= 0 {
		return 0, ErrNonPositiveTemperature
	}
	return a.K0 * math.Exp(-a.Ea/(GasConstant*a.Temperature)), nil
}
