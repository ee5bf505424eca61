package atom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ElamTable is an in-memory ElamSource backed by per-element energy grids,
// one grid per cross-section kind. Populate it with SetSeries (synthetic or
// programmatic data) or ReadFile (whitespace-delimited table files).
//
// ElamTable is safe for concurrent reads once populated; populate-then-read
// is the intended lifecycle.
type ElamTable struct {
	grids map[string]map[Kind]grid
}

// compile-time interface check
var _ ElamSource = (*ElamTable)(nil)

// NewElamTable returns an empty table.
func NewElamTable() *ElamTable {
	return &ElamTable{grids: make(map[string]map[Kind]grid)}
}

// SetSeries installs (or replaces) one element/kind series. Energies are in
// eV and must be strictly increasing; values are mu/rho in cm²/g.
func (t *ElamTable) SetSeries(symbol string, kind Kind, energies, values []float64) error {
	if !IsElement(symbol) {
		return fmt.Errorf("atom: %q: %w", symbol, ErrUnknownElement)
	}
	g, err := newGrid(energies, values)
	if err != nil {
		return fmt.Errorf("atom: %s/%s: %w", symbol, kind, err)
	}

	if t.grids[symbol] == nil {
		t.grids[symbol] = make(map[Kind]grid, 4)
	}
	t.grids[symbol][kind] = g

	return nil
}

// Mu returns mu/rho (cm²/g) for the element at the given energy in eV.
func (t *ElamTable) Mu(symbol string, energyEV float64, kind Kind) (float64, error) {
	if !IsElement(symbol) {
		return 0, fmt.Errorf("atom: %q: %w", symbol, ErrUnknownElement)
	}
	g, ok := t.grids[symbol][kind]
	if !ok {
		return 0, fmt.Errorf("atom: %s/%s: %w", symbol, kind, ErrNoTable)
	}

	v, err := g.at(energyEV)
	if err != nil {
		return 0, fmt.Errorf("atom: %s/%s: %w", symbol, kind, err)
	}

	return v, nil
}

// Span returns the tabulated energy range for one element/kind series.
func (t *ElamTable) Span(symbol string, kind Kind) (lo, hi float64, err error) {
	g, ok := t.grids[symbol][kind]
	if !ok {
		return 0, 0, fmt.Errorf("atom: %s/%s: %w", symbol, kind, ErrNoTable)
	}
	lo, hi = g.span()

	return lo, hi, nil
}

// ReadFile loads one element's series from a five-column whitespace table:
//
//	energy_eV  mu_total  mu_photo  mu_coherent  mu_incoherent
//
// Lines starting with '#' and blank lines are ignored.
func (t *ElamTable) ReadFile(symbol, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("atom: elam table for %s: %w", symbol, err)
	}
	defer f.Close()

	return t.Read(symbol, f)
}

// Read is ReadFile over an arbitrary reader.
func (t *ElamTable) Read(symbol string, r io.Reader) error {
	cols, err := readColumns(r, 5)
	if err != nil {
		return fmt.Errorf("atom: elam table for %s: %w", symbol, err)
	}

	kinds := []Kind{KindTotal, KindPhoto, KindCoherent, KindIncoherent}
	for i, kind := range kinds {
		if err := t.SetSeries(symbol, kind, cols[0], cols[1+i]); err != nil {
			return err
		}
	}

	return nil
}

// readColumns parses a whitespace-delimited numeric table with exactly
// want columns per data row, returning one slice per column.
func readColumns(r io.Reader, want int) ([][]float64, error) {
	cols := make([][]float64, want)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != want {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d: %w",
				line, want, len(fields), ErrBadSeries)
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, field, ErrBadSeries)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return cols, nil
}
