package atom

// Sequence helpers: the scattering-data interfaces are scalar per call;
// these wrappers mirror an ordered energy slice into a value slice of the
// same shape, failing on the first out-of-range or unknown-element energy.

// MuSeq evaluates an ElamSource over an ordered slice of energies (eV),
// returning one mu/rho value per input energy.
func MuSeq(src ElamSource, symbol string, energiesEV []float64, kind Kind) ([]float64, error) {
	out := make([]float64, len(energiesEV))
	for i, e := range energiesEV {
		v, err := src.Mu(symbol, e, kind)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// DataSeq evaluates a ChantlerSource column over an ordered slice of
// energies (eV), returning one value per input energy.
func DataSeq(src ChantlerSource, symbol string, energiesEV []float64, col Column) ([]float64, error) {
	out := make([]float64, len(energiesEV))
	for i, e := range energiesEV {
		v, err := src.Data(symbol, e, col)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
