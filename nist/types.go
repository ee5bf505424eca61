package nist

import "errors"

// Row is one tabulated energy point. Energy, F1, F2 and Wavelength come
// from the remote table; WavelengthCM, Delta and Beta are filled in by
// WithOpticalColumns.
type Row struct {
	// Energy is the photon energy in keV (the table's sweep unit).
	Energy float64

	// F1 and F2 are the scattering factors in e/atom.
	F1, F2 float64

	// Wavelength is the table's native wavelength column, in nm.
	Wavelength float64

	// WavelengthCM is Wavelength converted to cm (× 1e-7).
	WavelengthCM float64

	// Delta and Beta are the derived optical constants.
	Delta, Beta float64
}

// Table is an ordered scattering table: rows sorted by strictly increasing
// energy. Optical reports whether WithOpticalColumns has populated the
// derived columns.
type Table struct {
	Rows    []Row
	Optical bool
}

// Sentinel errors returned by the nist package.
var (
	// ErrRemotePage indicates the remote payload signals failure (the
	// page carries the service's error marker).
	ErrRemotePage = errors.New("nist: remote page signals an error")

	// ErrNoDensity indicates no nominal-density line was found in the
	// payload.
	ErrNoDensity = errors.New("nist: no nominal density line in page")

	// ErrBadTable indicates the expected table structure is missing or
	// malformed: no data rows, rows with too few cells, non-numeric
	// cells, or energies that are not strictly increasing.
	ErrBadTable = errors.New("nist: malformed scattering table")

	// ErrNoOptical indicates delta/beta columns were requested before
	// WithOpticalColumns computed them.
	ErrNoOptical = errors.New("nist: optical columns not computed")
)
