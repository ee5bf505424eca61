package formula

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/serebrin/xrayopt/atom"
)

// tokenKind tags one lexeme of a formula string.
type tokenKind int

const (
	tokAtom   tokenKind = iota // element symbol, e.g. "Ca"
	tokNumber                  // multiplier literal, e.g. "3" or "1.9"
	tokOpen                    // '('
	tokClose                   // ')'
)

type token struct {
	kind  tokenKind
	text  string  // raw lexeme (atom symbol or number literal)
	value float64 // parsed value for tokNumber
	pos   int     // byte offset in the input, for error context
}

// Parse parses a chemical formula into its elemental composition.
//
// The grammar is described in the package documentation. Repeated symbols
// are summed across the whole formula, so Parse("CH3COOH") and
// Parse("C2H4O2") yield the same Composition.
func Parse(input string) (Composition, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("formula: %q: %w", input, ErrEmptyFormula)
	}

	// 1) Lex the whole input into a tagged token stream.
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}

	// 2) Recursive descent over the tokens.
	p := &parser{input: input, toks: toks}
	comp, err := p.sequence(0)
	if err != nil {
		return nil, err
	}

	// 3) A leftover token can only be a stray ')'.
	if p.i < len(p.toks) {
		return nil, fmt.Errorf("formula: %q: stray ')' at offset %d: %w",
			input, p.toks[p.i].pos, ErrUnbalancedParen)
	}

	// 4) Parenthesized emptiness like "( )2" lexes fine but names no atoms.
	if len(comp) == 0 {
		return nil, fmt.Errorf("formula: %q: %w", input, ErrEmptyFormula)
	}

	return comp, nil
}

// lex splits the input into atom, number and parenthesis tokens, skipping
// whitespace. Element symbols are validated here: one uppercase letter
// optionally followed by one lowercase letter, and the pair must name a
// supported element.
func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, token{kind: tokOpen, pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokClose, pos: i})
			i++
		case unicode.IsUpper(r):
			sym := string(r)
			width := 1
			if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				sym += string(runes[i+1])
				width = 2
			}
			if !atom.IsElement(sym) {
				return nil, fmt.Errorf("formula: %q: symbol %q at offset %d: %w",
					input, sym, i, ErrBadSymbol)
			}
			toks = append(toks, token{kind: tokAtom, text: sym, pos: i})
			i += width
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			lit := string(runes[start:i])
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("formula: %q: literal %q at offset %d: %w",
					input, lit, start, ErrBadNumber)
			}
			toks = append(toks, token{kind: tokNumber, text: lit, value: v, pos: start})
		default:
			return nil, fmt.Errorf("formula: %q: unexpected %q at offset %d: %w",
				input, string(r), i, ErrBadSymbol)
		}
	}

	return toks, nil
}

// parser walks the token stream with a single index; sequence() is the only
// production and recurses for parenthesized groups.
type parser struct {
	input string
	toks  []token
	i     int
}

// sequence parses (atom [number] | '(' sequence ')' [number])* until the
// end of input or an unconsumed ')' (left for the enclosing group).
func (p *parser) sequence(depth int) (Composition, error) {
	comp := Composition{}
	for p.i < len(p.toks) {
		tok := p.toks[p.i]
		switch tok.kind {
		case tokAtom:
			p.i++
			comp[tok.text] += p.multiplier()

		case tokOpen:
			p.i++
			inner, err := p.sequence(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.i >= len(p.toks) || p.toks[p.i].kind != tokClose {
				return nil, fmt.Errorf("formula: %q: '(' at offset %d never closed: %w",
					p.input, tok.pos, ErrUnbalancedParen)
			}
			p.i++ // consume ')'
			mult := p.multiplier()
			for sym, coeff := range inner {
				comp[sym] += coeff * mult
			}

		case tokClose:
			if depth == 0 {
				return nil, fmt.Errorf("formula: %q: stray ')' at offset %d: %w",
					p.input, tok.pos, ErrUnbalancedParen)
			}
			// Leave the ')' for the enclosing group to consume.
			return comp, nil

		case tokNumber:
			return nil, fmt.Errorf("formula: %q: number %q at offset %d: %w",
				p.input, tok.text, tok.pos, ErrDanglingMultiplier)
		}
	}

	return comp, nil
}

// multiplier consumes an optional number token, defaulting to 1.
func (p *parser) multiplier() float64 {
	if p.i < len(p.toks) && p.toks[p.i].kind == tokNumber {
		v := p.toks[p.i].value
		p.i++

		return v
	}

	return 1
}
