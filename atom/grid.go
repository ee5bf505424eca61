package atom

import (
	"fmt"
	"math"
	"sort"
)

// grid is one tabulated per-element data series: an ordered energy axis and
// the value sampled at each energy. The axis must be strictly increasing
// and strictly positive (energies are log-scaled during interpolation).
type grid struct {
	energies []float64 // eV, strictly increasing, > 0
	values   []float64
}

// newGrid validates and copies a series. The copies keep later caller-side
// mutation of the input slices from corrupting the table.
func newGrid(energies, values []float64) (grid, error) {
	if len(energies) < 2 {
		return grid{}, fmt.Errorf("atom: series needs at least 2 points, got %d: %w",
			len(energies), ErrBadSeries)
	}
	if len(energies) != len(values) {
		return grid{}, fmt.Errorf("atom: %d energies vs %d values: %w",
			len(energies), len(values), ErrBadSeries)
	}
	for i, e := range energies {
		if e <= 0 {
			return grid{}, fmt.Errorf("atom: non-positive energy %g at index %d: %w", e, i, ErrBadSeries)
		}
		if i > 0 && e <= energies[i-1] {
			return grid{}, fmt.Errorf("atom: energies not strictly increasing at index %d: %w", i, ErrBadSeries)
		}
	}

	g := grid{
		energies: append([]float64(nil), energies...),
		values:   append([]float64(nil), values...),
	}

	return g, nil
}

// at samples the series at the given energy.
//
// Interpolation is piecewise log-log when both bracketing values are
// positive (the natural scheme for cross sections spanning decades), and
// falls back to linear-in-log-energy when a bracketing value is zero or
// negative (f1 crosses zero near absorption edges). Energies outside the
// grid return ErrEnergyRange; the tables are never extrapolated.
func (g grid) at(energy float64) (float64, error) {
	n := len(g.energies)
	if energy < g.energies[0] || energy > g.energies[n-1] {
		return 0, fmt.Errorf("atom: energy %g eV outside [%g, %g]: %w",
			energy, g.energies[0], g.energies[n-1], ErrEnergyRange)
	}

	// Locate the bracketing segment [i-1, i].
	i := sort.SearchFloat64s(g.energies, energy)
	if i < n && g.energies[i] == energy {
		return g.values[i], nil // exact grid point
	}

	e0, e1 := g.energies[i-1], g.energies[i]
	v0, v1 := g.values[i-1], g.values[i]
	t := (math.Log(energy) - math.Log(e0)) / (math.Log(e1) - math.Log(e0))

	if v0 > 0 && v1 > 0 {
		return math.Exp(math.Log(v0) + t*(math.Log(v1)-math.Log(v0))), nil
	}

	return v0 + t*(v1-v0), nil
}

// span returns the tabulated energy range [min, max] in eV.
func (g grid) span() (lo, hi float64) {
	return g.energies[0], g.energies[len(g.energies)-1]
}
