package formula

import "errors"

// Composition maps element symbols to stoichiometric coefficients within
// one formula unit. Coefficients are positive and not necessarily integer.
// A Composition returned by Parse is owned by the caller; the parser never
// retains or mutates it afterwards.
type Composition map[string]float64

// Symbols returns the element symbols of the composition in unspecified
// order. Callers that need determinism sort the result.
func (c Composition) Symbols() []string {
	out := make([]string, 0, len(c))
	for sym := range c {
		out = append(out, sym)
	}

	return out
}

// Sentinel errors returned by Parse.
var (
	// ErrEmptyFormula indicates empty input or input with no atoms at all.
	ErrEmptyFormula = errors.New("formula: empty formula")

	// ErrBadSymbol indicates a token that is not a supported element symbol.
	ErrBadSymbol = errors.New("formula: invalid element symbol")

	// ErrUnbalancedParen indicates an unmatched '(' or ')'.
	ErrUnbalancedParen = errors.New("formula: unbalanced parentheses")

	// ErrDanglingMultiplier indicates a numeric literal with no preceding
	// atom or group to multiply.
	ErrDanglingMultiplier = errors.New("formula: multiplier with no preceding atom or group")

	// ErrBadNumber indicates a numeric literal that failed to parse.
	ErrBadNumber = errors.New("formula: malformed numeric multiplier")
)
