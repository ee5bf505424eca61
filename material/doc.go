// Package material maintains a small named-material database and computes
// compound attenuation coefficients from it.
//
// What:
//
//   - Store — persistence contract for material entries, with two
//     implementations: FileStore (line-oriented pipe-delimited text) and
//     MemStore (tests, ephemeral registries).
//   - Registry — name → (formula, density) lookup over a Store. Names are
//     case-insensitive; chemical formulas stay case-sensitive. There is no
//     delete operation; re-adding a name appends, and the latest entry
//     wins on load.
//   - Mu / MuComponents — density-and-stoichiometry-weighted aggregation
//     of per-element Elam attenuation data into a bulk linear attenuation
//     coefficient (1/cm), optionally with a per-element breakdown.
//
// Store file format (UTF-8):
//
//	# comment
//	water | H2O | 1.0
//
// Data lines are pipe-delimited name | formula | density (g/cm³) with
// surrounding whitespace trimmed; blank lines are ignored.
//
// The registry assumes a single writer. Concurrent Add calls from
// independent processes may interleave or lose updates; that is a
// documented limitation, not a guarantee to build on.
//
// Errors (sentinel):
//
//   - ErrMissingDensity — density needed but absent: the material is not
//     registered and the caller supplied none.
//   - ErrBadStore       — malformed line in the backing store.
//   - ErrBadMaterial    — Add rejected the entry (empty name, formula that
//     does not parse, non-positive density).
package material
