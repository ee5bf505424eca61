package optics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serebrin/xrayopt/atom"
	"github.com/serebrin/xrayopt/formula"
	"github.com/serebrin/xrayopt/optics"
	"github.com/serebrin/xrayopt/phys"
)

// constChantler installs constant Chantler data for one element over
// 1-100 keV, keeping expectations hand-computable.
func constChantler(t *testing.T, tab *atom.ChantlerTable, sym string, f1, f2, muPhoto, muTotal float64) {
	t.Helper()
	energies := []float64{1e3, 1e5}
	set := func(col atom.Column, v float64) {
		require.NoError(t, tab.SetSeries(sym, col, energies, []float64{v, v}))
	}
	set(atom.ColF1, f1)
	set(atom.ColF2, f2)
	set(atom.ColMuPhoto, muPhoto)
	set(atom.ColMuTotal, muTotal)
}

// TestDeltaBeta_HandComputedSingleElement checks every step of the formula
// against independent arithmetic for a one-element material.
func TestDeltaBeta_HandComputedSingleElement(t *testing.T) {
	tab := atom.NewChantlerTable()
	constChantler(t, tab, "Si", -0.25, 0.32, 30.0, 33.0) // f' = -0.25

	const (
		density = 2.33
		energy  = 1e4
	)
	oc, err := optics.DeltaBeta(tab, "Si", density, energy)
	require.NoError(t, err)

	mass, err := atom.AtomicMass("Si")
	require.NoError(t, err)

	lambda := phys.WavelengthCM(energy)
	weight := density * 1 * phys.Avogadro
	scale := lambda * lambda * phys.RElectronCM / (2 * math.Pi * mass)

	wantDelta := weight * (-0.25 + 14) * scale // conventional f1 = f' + Z
	wantBeta := weight * 0.32 * (33.0 / 30.0) * scale

	assert.InEpsilon(t, wantDelta, oc.Delta, 1e-12)
	assert.InEpsilon(t, wantBeta, oc.Beta, 1e-12)
	assert.InEpsilon(t, lambda/(4*math.Pi*wantBeta), oc.AttenuationLength, 1e-12)
}

// TestDeltaBeta_PhotoOnly verifies the option drops the mu_total/mu_photo
// rescaling of beta.
func TestDeltaBeta_PhotoOnly(t *testing.T) {
	tab := atom.NewChantlerTable()
	constChantler(t, tab, "Si", 0.1, 0.4, 20.0, 25.0)

	total, err := optics.DeltaBeta(tab, "Si", 2.33, 1e4)
	require.NoError(t, err)
	photo, err := optics.DeltaBeta(tab, "Si", 2.33, 1e4, optics.WithPhotoOnly())
	require.NoError(t, err)

	assert.InEpsilon(t, 25.0/20.0, total.Beta/photo.Beta, 1e-12)
	assert.Equal(t, total.Delta, photo.Delta, "delta is unaffected by the beta option")
}

// TestDeltaBeta_ScaleInvariance: H2O and H4O2 must agree, since
// stoichiometric scaling cancels in the mass-weighted average.
func TestDeltaBeta_ScaleInvariance(t *testing.T) {
	tab := atom.NewChantlerTable()
	constChantler(t, tab, "H", 0.0, 0.001, 0.39, 0.60)
	constChantler(t, tab, "O", 0.05, 0.032, 5.5, 5.8)

	a, err := optics.DeltaBeta(tab, "H2O", 1.0, 8e3)
	require.NoError(t, err)
	b, err := optics.DeltaBeta(tab, "H4O2", 1.0, 8e3)
	require.NoError(t, err)

	assert.InEpsilon(t, a.Delta, b.Delta, 1e-12)
	assert.InEpsilon(t, a.Beta, b.Beta, 1e-12)
	assert.InEpsilon(t, a.AttenuationLength, b.AttenuationLength, 1e-12)
}

// TestDeltaBeta_ZeroBetaAttenuation verifies the explicit +Inf guard: with
// f2 = 0 everywhere, beta is zero and the attenuation length is +Inf, not
// NaN and not an error.
func TestDeltaBeta_ZeroBetaAttenuation(t *testing.T) {
	tab := atom.NewChantlerTable()
	constChantler(t, tab, "He", 0.01, 0.0, 0.0, 0.2)

	oc, err := optics.DeltaBeta(tab, "He", 1.785e-4, 5e3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, oc.Beta)
	assert.True(t, math.IsInf(oc.AttenuationLength, 1), "beta=0 must give +Inf, got %v", oc.AttenuationLength)
	assert.False(t, math.IsNaN(oc.Delta))
}

// TestDeltaBeta_InputErrors pins the failure modes to their sentinels.
func TestDeltaBeta_InputErrors(t *testing.T) {
	tab := atom.NewChantlerTable()
	constChantler(t, tab, "Si", 0.1, 0.2, 10, 11)

	_, err := optics.DeltaBeta(tab, "Si", 0, 1e4)
	assert.ErrorIs(t, err, optics.ErrBadDensity)

	_, err = optics.DeltaBeta(tab, "Si(", 2.33, 1e4)
	assert.ErrorIs(t, err, formula.ErrUnbalancedParen)

	_, err = optics.DeltaBeta(tab, "Xq2", 2.33, 1e4)
	assert.ErrorIs(t, err, formula.ErrBadSymbol)

	// Element valid but no data loaded for it.
	_, err = optics.DeltaBeta(tab, "Fe", 7.87, 1e4)
	assert.ErrorIs(t, err, atom.ErrNoTable)

	// Energy outside the loaded grids.
	_, err = optics.DeltaBeta(tab, "Si", 2.33, 1e6)
	assert.ErrorIs(t, err, atom.ErrEnergyRange)
}

// TestDeltaBetaSeq verifies shape mirroring and fail-fast behavior.
func TestDeltaBetaSeq(t *testing.T) {
	tab := atom.NewChantlerTable()
	constChantler(t, tab, "Si", 0.1, 0.2, 10, 11)

	energies := []float64{2e3, 5e3, 2e4}
	out, err := optics.DeltaBetaSeq(tab, "Si", 2.33, energies)
	require.NoError(t, err)
	require.Len(t, out, len(energies))

	// Constant scattering data: delta scales as lambda², i.e. 1/E².
	ratio := out[0].Delta / out[2].Delta
	assert.InEpsilon(t, math.Pow(2e4/2e3, 2), ratio, 1e-9)

	_, err = optics.DeltaBetaSeq(tab, "Si", 2.33, []float64{2e3, 1e6})
	assert.ErrorIs(t, err, atom.ErrEnergyRange)
}
