package atom

import (
	"fmt"
	"io"
	"os"
)

// ChantlerTable is an in-memory ChantlerSource backed by per-element energy
// grids, one grid per table column. Populate with SetSeries or ReadFile.
type ChantlerTable struct {
	grids map[string]map[Column]grid
}

var _ ChantlerSource = (*ChantlerTable)(nil)

// NewChantlerTable returns an empty table.
func NewChantlerTable() *ChantlerTable {
	return &ChantlerTable{grids: make(map[string]map[Column]grid)}
}

// SetSeries installs (or replaces) one element/column series. Energies are
// in eV and must be strictly increasing.
func (t *ChantlerTable) SetSeries(symbol string, col Column, energies, values []float64) error {
	if !IsElement(symbol) {
		return fmt.Errorf("atom: %q: %w", symbol, ErrUnknownElement)
	}
	g, err := newGrid(energies, values)
	if err != nil {
		return fmt.Errorf("atom: %s/%s: %w", symbol, col, err)
	}

	if t.grids[symbol] == nil {
		t.grids[symbol] = make(map[Column]grid, 5)
	}
	t.grids[symbol][col] = g

	return nil
}

// Data returns the requested column value for the element at the given
// energy in eV: f1/f2 in e/atom, mu columns in cm²/g.
func (t *ChantlerTable) Data(symbol string, energyEV float64, col Column) (float64, error) {
	if !IsElement(symbol) {
		return 0, fmt.Errorf("atom: %q: %w", symbol, ErrUnknownElement)
	}
	g, ok := t.grids[symbol][col]
	if !ok {
		return 0, fmt.Errorf("atom: %s/%s: %w", symbol, col, ErrNoTable)
	}

	v, err := g.at(energyEV)
	if err != nil {
		return 0, fmt.Errorf("atom: %s/%s: %w", symbol, col, err)
	}

	return v, nil
}

// ReadFile loads one element's series from a six-column whitespace table:
//
//	energy_eV  f1  f2  mu_photo  mu_incoh  mu_total
//
// Lines starting with '#' and blank lines are ignored.
func (t *ChantlerTable) ReadFile(symbol, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("atom: chantler table for %s: %w", symbol, err)
	}
	defer f.Close()

	return t.Read(symbol, f)
}

// Read is ReadFile over an arbitrary reader.
func (t *ChantlerTable) Read(symbol string, r io.Reader) error {
	cols, err := readColumns(r, 6)
	if err != nil {
		return fmt.Errorf("atom: chantler table for %s: %w", symbol, err)
	}

	columns := []Column{ColF1, ColF2, ColMuPhoto, ColMuIncoh, ColMuTotal}
	for i, col := range columns {
		if err := t.SetSeries(symbol, col, cols[0], cols[1+i]); err != nil {
			return err
		}
	}

	return nil
}

// F1 is shorthand for Data(symbol, energy, ColF1): the tabulated anomalous
// correction f', in e/atom. Conventional f1 is F1 + Z.
func F1(src ChantlerSource, symbol string, energyEV float64) (float64, error) {
	return src.Data(symbol, energyEV, ColF1)
}

// F2 is shorthand for Data(symbol, energy, ColF2), in e/atom.
func F2(src ChantlerSource, symbol string, energyEV float64) (float64, error) {
	return src.Data(symbol, energyEV, ColF2)
}
