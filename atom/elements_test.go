package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serebrin/xrayopt/atom"
)

// TestLookup_KnownElements spot-checks the metadata table at both ends of
// the supported range and in the middle.
func TestLookup_KnownElements(t *testing.T) {
	h, err := atom.Lookup("H")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Z)
	assert.InDelta(t, 1.008, h.Mass, 1e-9)

	fe, err := atom.Lookup("Fe")
	require.NoError(t, err)
	assert.Equal(t, 26, fe.Z)
	assert.InDelta(t, 55.845, fe.Mass, 1e-9)
	assert.InDelta(t, 7.874, fe.Density, 1e-9)

	cf, err := atom.Lookup("Cf")
	require.NoError(t, err)
	assert.Equal(t, atom.MaxZ, cf.Z)
}

// TestLookup_UnknownElement verifies the sentinel for out-of-range symbols
// and that symbols are case-sensitive.
func TestLookup_UnknownElement(t *testing.T) {
	for _, symbol := range []string{"Xx", "fe", "FE", "", "Uue"} {
		_, err := atom.Lookup(symbol)
		assert.ErrorIs(t, err, atom.ErrUnknownElement, "symbol %q must be rejected", symbol)
	}
}

// TestAccessors verifies the scalar convenience accessors agree with Lookup.
func TestAccessors(t *testing.T) {
	z, err := atom.AtomicNumber("Au")
	require.NoError(t, err)
	assert.Equal(t, 79, z)

	m, err := atom.AtomicMass("O")
	require.NoError(t, err)
	assert.InDelta(t, 15.999, m, 1e-9)

	d, err := atom.AtomicDensity("Si")
	require.NoError(t, err)
	assert.InDelta(t, 2.33, d, 1e-9)

	_, err = atom.AtomicNumber("Q")
	assert.ErrorIs(t, err, atom.ErrUnknownElement)
}

// TestSymbolForZ verifies the reverse lookup and its range check.
func TestSymbolForZ(t *testing.T) {
	s, err := atom.SymbolForZ(26)
	require.NoError(t, err)
	assert.Equal(t, "Fe", s)

	_, err = atom.SymbolForZ(0)
	assert.ErrorIs(t, err, atom.ErrUnknownElement)
	_, err = atom.SymbolForZ(atom.MaxZ + 1)
	assert.ErrorIs(t, err, atom.ErrUnknownElement)
}

// TestIsElement covers the boolean used by the formula parser.
func TestIsElement(t *testing.T) {
	assert.True(t, atom.IsElement("H"))
	assert.True(t, atom.IsElement("Ca"))
	assert.False(t, atom.IsElement("ca"))
	assert.False(t, atom.IsElement("Xy"))
}
