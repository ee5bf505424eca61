package material_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serebrin/xrayopt/atom"
	"github.com/serebrin/xrayopt/formula"
	"github.com/serebrin/xrayopt/material"
)

// flatElam builds an ElamTable with a constant mu/rho per element over
// 1-100 keV, so aggregation expectations can be computed by hand.
func flatElam(t *testing.T, mus map[string]float64) *atom.ElamTable {
	t.Helper()
	tab := atom.NewElamTable()
	for sym, mu := range mus {
		require.NoError(t, tab.SetSeries(sym, atom.KindTotal,
			[]float64{1e3, 1e5}, []float64{mu, mu}))
	}

	return tab
}

// TestMu_HandComputedWater checks the aggregation formula against a fully
// hand-computed value for H2O.
func TestMu_HandComputedWater(t *testing.T) {
	src := flatElam(t, map[string]float64{"H": 0.4, "O": 5.0})
	comp, err := formula.Parse("H2O")
	require.NoError(t, err)

	// masses: H 1.008, O 15.999
	// weighted = 2*1.008*0.4 + 1*15.999*5.0 = 0.8064 + 79.995 = 80.8014
	// total    = 2*1.008 + 15.999          = 18.015
	// mu       = 1.0 * 80.8014 / 18.015
	mu, err := material.Mu(src, comp, 1.0, 1e4, atom.KindTotal)
	require.NoError(t, err)
	assert.InEpsilon(t, 80.8014/18.015, mu, 1e-12)
}

// TestMuComponents_MassSum verifies that the per-element
// fraction × mass contributions sum to the reported total mass.
func TestMuComponents_MassSum(t *testing.T) {
	src := flatElam(t, map[string]float64{"Ca": 1, "Mg": 2, "C": 3, "O": 4})
	comp, err := formula.Parse("CaMg(CO3)2")
	require.NoError(t, err)

	c, err := material.MuComponents(src, comp, 2.87, 5e3, atom.KindTotal)
	require.NoError(t, err)
	require.Len(t, c.Elements, 4)

	var sum float64
	for _, e := range c.Elements {
		sum += e.Fraction * e.Mass
	}
	assert.InDelta(t, c.TotalMass, sum, 1e-9)
	assert.Equal(t, 2.87, c.Density)

	// The breakdown folds back to the bulk value.
	mu, err := material.Mu(src, comp, 2.87, 5e3, atom.KindTotal)
	require.NoError(t, err)
	assert.InEpsilon(t, mu, c.Mu(), 1e-12)
}

// TestMu_ScaleInvariance: stoichiometric scaling cancels in the
// mass-weighted average, so H2O and H4O2 agree.
func TestMu_ScaleInvariance(t *testing.T) {
	src := flatElam(t, map[string]float64{"H": 0.38, "O": 4.9})

	small, err := formula.Parse("H2O")
	require.NoError(t, err)
	big, err := formula.Parse("H4O2")
	require.NoError(t, err)

	muSmall, err := material.Mu(src, small, 1.0, 2e4, atom.KindTotal)
	require.NoError(t, err)
	muBig, err := material.Mu(src, big, 1.0, 2e4, atom.KindTotal)
	require.NoError(t, err)
	assert.InEpsilon(t, muSmall, muBig, 1e-12)
}

// TestMu_MissingDensity verifies the typed failure for absent densities.
func TestMu_MissingDensity(t *testing.T) {
	src := flatElam(t, map[string]float64{"H": 0.4, "O": 5.0})
	comp, err := formula.Parse("H2O")
	require.NoError(t, err)

	_, err = material.Mu(src, comp, 0, 1e4, atom.KindTotal)
	assert.ErrorIs(t, err, material.ErrMissingDensity)
	_, err = material.Mu(src, comp, -1, 1e4, atom.KindTotal)
	assert.ErrorIs(t, err, material.ErrMissingDensity)
}

// TestMuByName_Resolution covers both resolution paths: registered names
// use the stored formula and density; unregistered names are formulas and
// require an explicit density.
func TestMuByName_Resolution(t *testing.T) {
	src := flatElam(t, map[string]float64{"H": 0.4, "O": 5.0})
	reg := material.NewRegistry(&material.MemStore{})
	require.NoError(t, reg.Add("Water", "H2O", 1.0))

	comp, err := formula.Parse("H2O")
	require.NoError(t, err)
	want, err := material.Mu(src, comp, 1.0, 1e4, atom.KindTotal)
	require.NoError(t, err)

	// Registered name, case-insensitive; registry density wins.
	got, err := reg.MuByName(src, "WATER", 0, 1e4, atom.KindTotal)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-12)

	// Unregistered name used as a formula with explicit density.
	got, err = reg.MuByName(src, "H2O", 1.0, 1e4, atom.KindTotal)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-12)

	// Unregistered, no density: typed failure, never a silent default.
	_, err = reg.MuByName(src, "H2O", 0, 1e4, atom.KindTotal)
	assert.ErrorIs(t, err, material.ErrMissingDensity)

	// Unregistered and not a formula either.
	_, err = reg.MuByName(src, "vibranium", 5.0, 1e4, atom.KindTotal)
	assert.ErrorIs(t, err, formula.ErrBadSymbol)
}
