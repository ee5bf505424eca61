// Package atom: shared types and sentinel errors for the atomic-data
// providers. See doc.go for the package overview.
package atom

import "errors"

// Kind selects the cross-section component of an Elam-style attenuation
// lookup.
type Kind int

const (
	// KindTotal is the total mass attenuation coefficient (default).
	KindTotal Kind = iota

	// KindPhoto is the photo-absorption contribution only.
	KindPhoto

	// KindCoherent is the coherent (Rayleigh) scattering contribution.
	KindCoherent

	// KindIncoherent is the incoherent (Compton) scattering contribution.
	KindIncoherent
)

// String returns the table-file column name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTotal:
		return "total"
	case KindPhoto:
		return "photo"
	case KindCoherent:
		return "coherent"
	case KindIncoherent:
		return "incoherent"
	default:
		return "unknown"
	}
}

// Column selects a column of a Chantler-style table.
type Column int

const (
	// ColF1 is the real anomalous scattering factor, in e/atom.
	// Note: the tabulated f1 is the anomalous correction f'; conventional
	// f1 is f' + Z. Callers that need conventional f1 add the atomic
	// number themselves (see optics.DeltaBeta).
	ColF1 Column = iota

	// ColF2 is the imaginary anomalous scattering factor, in e/atom.
	ColF2

	// ColMuPhoto is the photo-absorption mass attenuation coefficient, cm²/g.
	ColMuPhoto

	// ColMuIncoh is the incoherent-scattering contribution, cm²/g.
	ColMuIncoh

	// ColMuTotal is the total mass attenuation coefficient, cm²/g.
	ColMuTotal
)

// String returns the table-file column name for the column.
func (c Column) String() string {
	switch c {
	case ColF1:
		return "f1"
	case ColF2:
		return "f2"
	case ColMuPhoto:
		return "mu_photo"
	case ColMuIncoh:
		return "mu_incoh"
	case ColMuTotal:
		return "mu_total"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by the atom package. Wrapped context (symbol,
// energy, file line) is attached with fmt.Errorf("...: %w", Err...) at the
// point of detection; match with errors.Is.
var (
	// ErrUnknownElement indicates a symbol or atomic number outside the
	// supported range Z = 1..98.
	ErrUnknownElement = errors.New("atom: unknown element")

	// ErrNoTable indicates that no data grid has been loaded for the
	// requested element (or element/column pair).
	ErrNoTable = errors.New("atom: no table loaded for element")

	// ErrEnergyRange indicates an energy outside the tabulated grid; the
	// tables are not extrapolated.
	ErrEnergyRange = errors.New("atom: energy outside tabulated range")

	// ErrBadSeries indicates a malformed data series on ingestion:
	// fewer than two points, non-increasing or non-positive energies,
	// or mismatched energy/value lengths.
	ErrBadSeries = errors.New("atom: malformed data series")
)

// ElamSource supplies Elam-style mass attenuation coefficients.
//
// Mu returns mu/rho in cm²/g for the element at the given photon energy in
// eV. Implementations must return ErrUnknownElement for unsupported
// symbols; in-range interpolation behavior is up to the implementation.
type ElamSource interface {
	Mu(symbol string, energyEV float64, kind Kind) (float64, error)
}

// ChantlerSource supplies Chantler-style scattering data.
//
// Data returns the requested column value for the element at the given
// photon energy in eV: f1/f2 in e/atom, mu columns in cm²/g.
type ChantlerSource interface {
	Data(symbol string, energyEV float64, col Column) (float64, error)
}
