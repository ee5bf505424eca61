package material

import "errors"

// Entry is one material record: a display name, a chemical formula and a
// bulk density in g/cm³.
type Entry struct {
	Name    string
	Formula string
	Density float64
}

// Sentinel errors returned by the material package.
var (
	// ErrMissingDensity indicates that a density was required but absent:
	// the name is not a registered material and no density was supplied.
	ErrMissingDensity = errors.New("material: density required for unregistered material")

	// ErrBadStore indicates a malformed data line in the backing store.
	ErrBadStore = errors.New("material: malformed store line")

	// ErrBadMaterial indicates an entry rejected by Add: empty name,
	// formula that does not parse, or non-positive density.
	ErrBadMaterial = errors.New("material: invalid material entry")
)
