package material

import (
	"fmt"
	"sort"

	"github.com/serebrin/xrayopt/atom"
	"github.com/serebrin/xrayopt/formula"
)

// ElementMu is the per-element slice of a compound attenuation breakdown.
type ElementMu struct {
	// Fraction is the stoichiometric coefficient within one formula unit.
	Fraction float64

	// Mass is the element's atomic mass in g/mol.
	Mass float64

	// Mu is the element's mass attenuation coefficient in cm²/g at the
	// requested energy.
	Mu float64
}

// Components is the diagnostic breakdown returned by MuComponents.
type Components struct {
	// Density is the bulk density used for the calculation, g/cm³.
	Density float64

	// TotalMass is the formula-unit mass: sum of fraction × atomic mass.
	TotalMass float64

	// Elements maps each symbol to its share of the attenuation.
	Elements map[string]ElementMu
}

// Mu folds the breakdown back into the bulk linear attenuation
// coefficient (1/cm); it equals the value Mu() would have returned.
func (c Components) Mu() float64 {
	var weighted float64
	for _, e := range c.Elements {
		weighted += e.Fraction * e.Mass * e.Mu
	}

	return c.Density * weighted / c.TotalMass
}

// Mu computes the bulk linear attenuation coefficient (1/cm) of a compound
// at the given photon energy (eV): the mass-weighted average of per-element
// Elam mu/rho values, scaled by the bulk density.
//
// density must be positive; ErrMissingDensity is returned otherwise so a
// forgotten density fails loudly instead of defaulting.
func Mu(src atom.ElamSource, comp formula.Composition, density, energyEV float64, kind atom.Kind) (float64, error) {
	c, err := MuComponents(src, comp, density, energyEV, kind)
	if err != nil {
		return 0, err
	}

	return c.Mu(), nil
}

// MuComponents is Mu with the per-element breakdown retained, for
// diagnostic and plotting callers.
func MuComponents(src atom.ElamSource, comp formula.Composition, density, energyEV float64, kind atom.Kind) (Components, error) {
	if density <= 0 {
		return Components{}, fmt.Errorf("material: density %g: %w", density, ErrMissingDensity)
	}
	if len(comp) == 0 {
		return Components{}, fmt.Errorf("material: empty composition: %w", ErrBadMaterial)
	}

	// Deterministic element order keeps error attribution stable.
	symbols := comp.Symbols()
	sort.Strings(symbols)

	out := Components{Density: density, Elements: make(map[string]ElementMu, len(comp))}
	for _, sym := range symbols {
		mass, err := atom.AtomicMass(sym)
		if err != nil {
			return Components{}, err
		}
		mu, err := src.Mu(sym, energyEV, kind)
		if err != nil {
			return Components{}, err
		}

		frac := comp[sym]
		out.TotalMass += frac * mass
		out.Elements[sym] = ElementMu{Fraction: frac, Mass: mass, Mu: mu}
	}

	return out, nil
}

// MuByName resolves a material name through the registry and computes its
// bulk linear attenuation coefficient (1/cm).
//
// Resolution rule: a registered name supplies both formula and density
// (the registry density wins over the argument); an unregistered name is
// treated as a chemical formula and the caller must supply a positive
// density, otherwise ErrMissingDensity is returned.
func (r *Registry) MuByName(src atom.ElamSource, name string, density, energyEV float64, kind atom.Kind) (float64, error) {
	c, err := r.MuComponentsByName(src, name, density, energyEV, kind)
	if err != nil {
		return 0, err
	}

	return c.Mu(), nil
}

// MuComponentsByName is MuByName with the per-element breakdown retained.
func (r *Registry) MuComponentsByName(src atom.ElamSource, name string, density, energyEV float64, kind atom.Kind) (Components, error) {
	formulaStr := name
	entry, ok, err := r.Get(name)
	if err != nil {
		return Components{}, err
	}
	if ok {
		formulaStr, density = entry.Formula, entry.Density
	} else if density <= 0 {
		return Components{}, fmt.Errorf("material: %q not registered and no density given: %w",
			name, ErrMissingDensity)
	}

	comp, err := formula.Parse(formulaStr)
	if err != nil {
		return Components{}, err
	}

	return MuComponents(src, comp, density, energyEV, kind)
}
