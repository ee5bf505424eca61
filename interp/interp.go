package interp

import (
	"errors"
	"fmt"

	ginterp "gonum.org/v1/gonum/interp"

	"github.com/serebrin/xrayopt/nist"
)

// Sentinel errors returned by the interp package.
var (
	// ErrOutOfDomain indicates an evaluation energy outside the table's
	// tabulated range; interpolants never extrapolate.
	ErrOutOfDomain = errors.New("interp: energy outside tabulated range")

	// ErrTooFewRows indicates a table with fewer than two rows.
	ErrTooFewRows = errors.New("interp: table needs at least two rows")
)

// Interpolant is a continuous function of energy (keV) built over one
// column of a scattering table. Immutable after construction; safe for
// concurrent use.
type Interpolant struct {
	column   string // "delta" or "beta", for error context
	min, max float64
	pl       ginterp.PiecewiseLinear
}

// DeltaInterpolant builds delta(energy) over the table's (energy, delta)
// pairs. The table must have its optical columns computed.
func DeltaInterpolant(table nist.Table) (*Interpolant, error) {
	return build(table, "delta", func(r nist.Row) float64 { return r.Delta })
}

// BetaInterpolant builds beta(energy) over the table's (energy, beta)
// pairs. The table must have its optical columns computed.
func BetaInterpolant(table nist.Table) (*Interpolant, error) {
	return build(table, "beta", func(r nist.Row) float64 { return r.Beta })
}

func build(table nist.Table, column string, pick func(nist.Row) float64) (*Interpolant, error) {
	if !table.Optical {
		return nil, fmt.Errorf("interp: %s interpolant: %w", column, nist.ErrNoOptical)
	}
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("interp: %s interpolant over %d rows: %w",
			column, len(table.Rows), ErrTooFewRows)
	}

	xs := make([]float64, len(table.Rows))
	ys := make([]float64, len(table.Rows))
	for i, r := range table.Rows {
		xs[i] = r.Energy
		ys[i] = pick(r)
	}

	it := &Interpolant{column: column, min: xs[0], max: xs[len(xs)-1]}
	// Fit only rejects unsorted or short input; the table invariant
	// (strictly increasing energies) rules both out, but a constructed
	// Table can violate it.
	if err := it.pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp: %s interpolant: %w", column, err)
	}

	return it, nil
}

// At evaluates the interpolant at an energy in keV. Energies outside the
// closed tabulated interval fail with ErrOutOfDomain.
func (it *Interpolant) At(energyKeV float64) (float64, error) {
	if energyKeV < it.min || energyKeV > it.max {
		return 0, fmt.Errorf("interp: %s at %g keV, tabulated range [%g, %g]: %w",
			it.column, energyKeV, it.min, it.max, ErrOutOfDomain)
	}

	return it.pl.Predict(energyKeV), nil
}

// Domain returns the valid evaluation interval [min, max] in keV.
func (it *Interpolant) Domain() (lo, hi float64) {
	return it.min, it.max
}
