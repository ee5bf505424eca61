// Package interp builds continuous delta(energy) and beta(energy)
// functions over a parsed NIST scattering table.
//
// What:
//
//	it, err := interp.DeltaInterpolant(table)
//	d, err := it.At(12.4) // energy in keV, the table's sweep unit
//
// The interpolation is piecewise linear between the tabulated points
// (gonum's interp.PiecewiseLinear), defined only on the closed interval
// [min(energy), max(energy)] of the table.
//
// Extrapolation policy: never. The tabulated rows are the only physics we
// have; evaluating outside the domain fails with ErrOutOfDomain (carrying
// the offending energy and the valid range) instead of silently clamping
// or extending the boundary slope.
//
// Errors (sentinel):
//
//   - ErrOutOfDomain — At called outside the tabulated energy range.
//   - ErrTooFewRows  — a table with fewer than two rows has no segments.
//   - nist.ErrNoOptical propagates when the table's delta/beta columns
//     were never computed.
package interp
