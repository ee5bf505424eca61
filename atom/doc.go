// Package atom supplies per-element atomic data for X-ray optics work:
// static element metadata (atomic number, molar mass, nominal density) and
// energy-dependent scattering/attenuation data from two independent
// tabulated sources.
//
// What:
//
//   - Element metadata for Z = 1..98 (H through Cf), looked up by symbol.
//   - ElamSource — mass attenuation coefficients mu/rho (cm²/g) in the
//     Elam/Ravel/Sieber table layout: total, photo, coherent, incoherent.
//   - ChantlerSource — anomalous scattering factors f1/f2 (e/atom) and
//     mu/rho (photo, incoherent, total) in the Chantler table layout.
//   - ElamTable / ChantlerTable — in-memory implementations backed by
//     per-element energy grids, sampled by log-log interpolation and
//     loadable from whitespace-delimited table files.
//
// Why two sources:
//
//	The Elam and Chantler compilations are independent data sets with
//	different layouts and strengths. Consumers pick the capability they
//	need (an ElamSource or a ChantlerSource) instead of flagging a source
//	at every call site; both table types satisfy their interface and can
//	be swapped for any other implementation.
//
// The package itself never caches across calls and never talks to the
// network; where the grids come from is the caller's concern.
//
// Errors (sentinel):
//
//   - ErrUnknownElement — symbol or atomic number outside Z = 1..98.
//   - ErrNoTable        — no grid loaded for the requested element/column.
//   - ErrEnergyRange    — energy outside the tabulated grid.
//   - ErrBadSeries      — malformed series on ingestion (unsorted, short,
//     non-positive energies, length mismatch).
package atom
