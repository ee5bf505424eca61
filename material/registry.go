package material

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/facette/natsort"

	"github.com/serebrin/xrayopt/formula"
)

// Registry is a name → (formula, density) lookup over an explicit Store.
// It keeps no in-memory cache: every Get re-reads the store, so a fresh
// process always sees the latest appended value for a name.
type Registry struct {
	store Store
}

// NewRegistry returns a registry over the given store.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// Get looks up a material by name, case-insensitively. A missing name is
// not an error: ok is false and err is nil. When the same name was added
// more than once, the latest entry wins.
func (r *Registry) Get(name string) (Entry, bool, error) {
	entries, err := r.store.Load()
	if err != nil {
		return Entry{}, false, err
	}

	key := strings.ToLower(strings.TrimSpace(name))
	var (
		found Entry
		ok    bool
	)
	for _, e := range entries {
		if strings.ToLower(e.Name) == key {
			found, ok = e, true // keep scanning: later entries override
		}
	}

	return found, ok, nil
}

// Add registers a material, overwriting any previous entry with the same
// (case-insensitive) name. The formula is normalized by stripping all
// whitespace and must parse; density must be positive.
func (r *Registry) Add(name, formulaStr string, density float64) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "|") {
		return fmt.Errorf("material: name %q: %w", name, ErrBadMaterial)
	}
	if density <= 0 {
		return fmt.Errorf("material: %s: density %g: %w", name, density, ErrBadMaterial)
	}

	norm := stripSpace(formulaStr)
	if _, err := formula.Parse(norm); err != nil {
		return fmt.Errorf("material: %s: %w: %w", name, ErrBadMaterial, err)
	}

	return r.store.Append(Entry{Name: name, Formula: norm, Density: density})
}

// Names returns the registered material names in natural sort order, one
// per material (latest spelling wins for names differing only in case).
func (r *Registry) Names() ([]string, error) {
	entries, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	latest := make(map[string]string, len(entries))
	for _, e := range entries {
		latest[strings.ToLower(e.Name)] = e.Name
	}
	names := make([]string, 0, len(latest))
	for _, name := range latest {
		names = append(names, name)
	}
	natsort.Sort(names)

	return names, nil
}

// stripSpace removes every whitespace rune ("C H3 COOH" → "CH3COOH").
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
