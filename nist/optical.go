package nist

import (
	"math"

	"github.com/serebrin/xrayopt/phys"
)

// WithOpticalColumns returns a copy of the table with the derived columns
// filled in for every row:
//
//	lambda_cm = wavelength_nm × 1e-7
//	factor    = r_e / (2π) × atomsPerVolume
//	delta     = factor × lambda_cm² × f1
//	beta      = factor × lambda_cm² × f2
//
// atomsPerVolume is the atom density in atoms/cm³, as produced by
// ExtractDensity. The receiver is left untouched.
func (t Table) WithOpticalColumns(atomsPerVolume float64) Table {
	factor := phys.RElectronCM / (2 * math.Pi) * atomsPerVolume

	out := Table{Rows: make([]Row, len(t.Rows)), Optical: true}
	for i, r := range t.Rows {
		lambda := r.Wavelength * 1e-7 // nm → cm
		r.WavelengthCM = lambda
		r.Delta = factor * lambda * lambda * r.F1
		r.Beta = factor * lambda * lambda * r.F2
		out.Rows[i] = r
	}

	return out
}

// Span returns the table's energy range [min, max] in keV.
func (t Table) Span() (lo, hi float64) {
	if len(t.Rows) == 0 {
		return 0, 0
	}

	return t.Rows[0].Energy, t.Rows[len(t.Rows)-1].Energy
}
