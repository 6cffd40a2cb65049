package reactor

// ConcentrationFromConductivity maps a measured conductivity trace onto a
// concentration series via two-point linear calibration: W0/Winf are the
// conductivities at the start and end of the experiment, ca0/caInf the
// matching concentrations.
func ConcentrationFromConductivity(ca0, caInf, w0, wInf float64, conductivity []float64) ([]float64, error) {
	if w0 == wInf {
		return nil, ErrFlatCalibration
	}

	out := make([]float64, len(conductivity))
	for i, w := range conductivity {
		out[i] = (w-wInf)/(w0-wInf)*(ca0-caInf) + caInf
	}
	return out, nil
}
