// Package nist validates and parses the energy-swept form-factor tables
// served by the NIST FFAST lookup service, and derives delta/beta columns
// across the table.
//
// Pipeline (Service.FormattedTable runs it end to end):
//
//	fetch → Validate → Parse → ExtractDensity → WithOpticalColumns → Format
//
// The fetch itself is an injected Fetcher: the package never opens a
// connection, imposes no timeout and performs no retries; callers wrap
// the transport with whatever policy they need and hand in the raw page
// text. QueryURL builds the service's fixed query template.
//
// Column-selection contract:
//
//	From each HTML data row the parser keeps the first three cells
//	(energy keV, f1, f2) plus the last cell (wavelength, nm). The full
//	column count of the remote table is undocumented upstream; this
//	first-three-plus-last policy is preserved exactly as a black-box
//	contract with the service.
//
// Errors (sentinel):
//
//   - ErrRemotePage — the payload carries the service's error marker.
//   - ErrNoDensity  — no "Nominal density" line found in the payload.
//   - ErrBadTable   — expected table structure missing or malformed
//     (no data rows, short rows, non-numeric cells, non-increasing
//     energies).
//   - ErrNoOptical  — Format or an interpolant asked for delta/beta
//     before WithOpticalColumns computed them.
package nist
