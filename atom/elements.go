package atom

import "fmt"

// MaxZ is the highest supported atomic number (Cf); the upstream Elam and
// Chantler compilations both stop there.
const MaxZ = 98

// Element carries the static metadata for one element.
type Element struct {
	// Z is the atomic number, 1..MaxZ.
	Z int

	// Symbol is the standard one- or two-letter element symbol.
	Symbol string

	// Mass is the standard atomic weight in g/mol.
	Mass float64

	// Density is the nominal elemental density in g/cm³
	// (gases at STP, liquids/solids near room temperature).
	Density float64
}

// elements is indexed by Z-1. Atomic weights follow the IUPAC abridged
// standard values; densities match the conventional elemental values used
// alongside the Elam tables.
var elements = [MaxZ]Element{
	{1, "H", 1.008, 8.988e-5},
	{2, "He", 4.0026, 1.785e-4},
	{3, "Li", 6.94, 0.534},
	{4, "Be", 9.0122, 1.848},
	{5, "B", 10.81, 2.34},
	{6, "C", 12.011, 2.267},
	{7, "N", 14.007, 1.2506e-3},
	{8, "O", 15.999, 1.429e-3},
	{9, "F", 18.998, 1.696e-3},
	{10, "Ne", 20.180, 8.999e-4},
	{11, "Na", 22.990, 0.971},
	{12, "Mg", 24.305, 1.738},
	{13, "Al", 26.982, 2.699},
	{14, "Si", 28.085, 2.33},
	{15, "P", 30.974, 1.82},
	{16, "S", 32.06, 2.07},
	{17, "Cl", 35.45, 3.214e-3},
	{18, "Ar", 39.948, 1.784e-3},
	{19, "K", 39.098, 0.862},
	{20, "Ca", 40.078, 1.55},
	{21, "Sc", 44.956, 2.989},
	{22, "Ti", 47.867, 4.54},
	{23, "V", 50.942, 6.11},
	{24, "Cr", 51.996, 7.19},
	{25, "Mn", 54.938, 7.33},
	{26, "Fe", 55.845, 7.874},
	{27, "Co", 58.933, 8.9},
	{28, "Ni", 58.693, 8.902},
	{29, "Cu", 63.546, 8.96},
	{30, "Zn", 65.38, 7.133},
	{31, "Ga", 69.723, 5.904},
	{32, "Ge", 72.630, 5.323},
	{33, "As", 74.922, 5.73},
	{34, "Se", 78.971, 4.79},
	{35, "Br", 79.904, 3.12},
	{36, "Kr", 83.798, 3.733e-3},
	{37, "Rb", 85.468, 1.532},
	{38, "Sr", 87.62, 2.54},
	{39, "Y", 88.906, 4.469},
	{40, "Zr", 91.224, 6.506},
	{41, "Nb", 92.906, 8.57},
	{42, "Mo", 95.95, 10.22},
	{43, "Tc", 98.0, 11.5},
	{44, "Ru", 101.07, 12.37},
	{45, "Rh", 102.91, 12.41},
	{46, "Pd", 106.42, 12.02},
	{47, "Ag", 107.87, 10.5},
	{48, "Cd", 112.41, 8.65},
	{49, "In", 114.82, 7.31},
	{50, "Sn", 118.71, 7.29},
	{51, "Sb", 121.76, 6.691},
	{52, "Te", 127.60, 6.24},
	{53, "I", 126.90, 4.93},
	{54, "Xe", 131.29, 5.858e-3},
	{55, "Cs", 132.91, 1.873},
	{56, "Ba", 137.33, 3.5},
	{57, "La", 138.91, 6.145},
	{58, "Ce", 140.12, 6.77},
	{59, "Pr", 140.91, 6.773},
	{60, "Nd", 144.24, 7.008},
	{61, "Pm", 145.0, 7.264},
	{62, "Sm", 150.36, 7.52},
	{63, "Eu", 151.96, 5.244},
	{64, "Gd", 157.25, 7.901},
	{65, "Tb", 158.93, 8.23},
	{66, "Dy", 162.50, 8.551},
	{67, "Ho", 164.93, 8.795},
	{68, "Er", 167.26, 9.066},
	{69, "Tm", 168.93, 9.321},
	{70, "Yb", 173.05, 6.966},
	{71, "Lu", 174.97, 9.841},
	{72, "Hf", 178.49, 13.31},
	{73, "Ta", 180.95, 16.654},
	{74, "W", 183.84, 19.3},
	{75, "Re", 186.21, 21.02},
	{76, "Os", 190.23, 22.57},
	{77, "Ir", 192.22, 22.42},
	{78, "Pt", 195.08, 21.45},
	{79, "Au", 196.97, 19.32},
	{80, "Hg", 200.59, 13.546},
	{81, "Tl", 204.38, 11.85},
	{82, "Pb", 207.2, 11.35},
	{83, "Bi", 208.98, 9.747},
	{84, "Po", 209.0, 9.32},
	{85, "At", 210.0, 7.0},
	{86, "Rn", 222.0, 9.73e-3},
	{87, "Fr", 223.0, 1.87},
	{88, "Ra", 226.0, 5.5},
	{89, "Ac", 227.0, 10.07},
	{90, "Th", 232.04, 11.72},
	{91, "Pa", 231.04, 15.37},
	{92, "U", 238.03, 18.95},
	{93, "Np", 237.0, 20.25},
	{94, "Pu", 244.0, 19.84},
	{95, "Am", 243.0, 13.67},
	{96, "Cm", 247.0, 13.51},
	{97, "Bk", 247.0, 14.78},
	{98, "Cf", 251.0, 15.1},
}

// bySymbol indexes elements by symbol; built once at init.
var bySymbol = func() map[string]*Element {
	m := make(map[string]*Element, MaxZ)
	for i := range elements {
		m[elements[i].Symbol] = &elements[i]
	}

	return m
}()

// Lookup returns the metadata for an element symbol.
// Returns ErrUnknownElement for symbols outside Z = 1..MaxZ.
func Lookup(symbol string) (Element, error) {
	e, ok := bySymbol[symbol]
	if !ok {
		return Element{}, fmt.Errorf("atom: %q: %w", symbol, ErrUnknownElement)
	}

	return *e, nil
}

// IsElement reports whether symbol names a supported element.
// Symbols are case-sensitive ("He", not "HE" or "he").
func IsElement(symbol string) bool {
	_, ok := bySymbol[symbol]

	return ok
}

// AtomicNumber returns Z for an element symbol.
func AtomicNumber(symbol string) (int, error) {
	e, err := Lookup(symbol)
	if err != nil {
		return 0, err
	}

	return e.Z, nil
}

// AtomicMass returns the standard atomic weight (g/mol) for an element symbol.
func AtomicMass(symbol string) (float64, error) {
	e, err := Lookup(symbol)
	if err != nil {
		return 0, err
	}

	return e.Mass, nil
}

// AtomicDensity returns the nominal elemental density (g/cm³) for a symbol.
func AtomicDensity(symbol string) (float64, error) {
	e, err := Lookup(symbol)
	if err != nil {
		return 0, err
	}

	return e.Density, nil
}

// SymbolForZ returns the element symbol for an atomic number.
// Returns ErrUnknownElement for z outside 1..MaxZ.
func SymbolForZ(z int) (string, error) {
	if z < 1 || z > MaxZ {
		return "", fmt.Errorf("atom: Z=%d: %w", z, ErrUnknownElement)
	}

	return elements[z-1].Symbol, nil
}
