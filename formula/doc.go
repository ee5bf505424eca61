// Package formula parses chemical formula strings into elemental
// compositions.
//
// What:
//
//	Parse("CaMg(CO3)2") → Composition{Ca:1, Mg:1, C:2, O:6}
//
// Grammar (recursive descent over a tagged token stream):
//
//   - An element token is one uppercase letter optionally followed by one
//     lowercase letter, and must name a supported element (Z = 1..98).
//   - An optional numeric literal after an atom or group is its multiplier
//     (integer or decimal, default 1); fractional stoichiometry like
//     "La1.9Sr0.1CuO4" is valid.
//   - A parenthesized group may contain element/group sequences; its
//     trailing multiplier applies to every symbol accumulated inside.
//   - Repeated symbols anywhere in the formula are summed, not overwritten.
//   - Whitespace between tokens is ignored.
//
// Errors (sentinel):
//
//   - ErrEmptyFormula      — empty input, or input that yields no atoms.
//   - ErrBadSymbol         — token that is not a supported element symbol.
//   - ErrUnbalancedParen   — '(' without ')' or stray ')'.
//   - ErrDanglingMultiplier — a number with no preceding atom or group.
//   - ErrBadNumber         — a numeric literal that does not parse.
//
// All errors carry the offending formula (and token where useful) in their
// message; match the kind with errors.Is.
package formula
