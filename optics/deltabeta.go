package optics

import (
	"fmt"
	"math"
	"sort"

	"github.com/serebrin/xrayopt/atom"
	"github.com/serebrin/xrayopt/formula"
	"github.com/serebrin/xrayopt/phys"
)

// DeltaBeta computes delta, beta and the attenuation length for a compound
// at one photon energy in eV, using Chantler-tabulated scattering factors.
// See the package documentation for the algorithm.
func DeltaBeta(src atom.ChantlerSource, formulaStr string, density, energyEV float64, opts ...Option) (OpticalConstants, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if density <= 0 {
		return OpticalConstants{}, fmt.Errorf("optics: %q: density %g: %w",
			formulaStr, density, ErrBadDensity)
	}

	// 1) Composition.
	comp, err := formula.Parse(formulaStr)
	if err != nil {
		return OpticalConstants{}, err
	}
	symbols := comp.Symbols()
	sort.Strings(symbols) // deterministic accumulation order

	// 2) Accumulate weighted scattering factors per element.
	var deltaSum, betaPhotoSum, betaTotalSum, totalMass float64
	for _, sym := range symbols {
		count := comp[sym]

		z, err := atom.AtomicNumber(sym)
		if err != nil {
			return OpticalConstants{}, err
		}
		mass, err := atom.AtomicMass(sym)
		if err != nil {
			return OpticalConstants{}, err
		}

		// Tabulated f1 is the anomalous correction f'; conventional f1 = f' + Z.
		f1, err := src.Data(sym, energyEV, atom.ColF1)
		if err != nil {
			return OpticalConstants{}, err
		}
		f1 += float64(z)

		f2, err := src.Data(sym, energyEV, atom.ColF2)
		if err != nil {
			return OpticalConstants{}, err
		}
		muPhoto, err := src.Data(sym, energyEV, atom.ColMuPhoto)
		if err != nil {
			return OpticalConstants{}, err
		}
		muTotal, err := src.Data(sym, energyEV, atom.ColMuTotal)
		if err != nil {
			return OpticalConstants{}, err
		}

		weight := density * count * phys.Avogadro
		deltaSum += weight * f1
		betaPhotoSum += weight * f2
		if f2 != 0 {
			// A zero f2 contributes nothing either way; skipping it keeps
			// a zero mu_photo from turning the sum into NaN.
			betaTotalSum += weight * f2 * (muTotal / muPhoto)
		}
		totalMass += count * mass
	}

	// 3) Convert the sums into optical constants.
	lambda := phys.WavelengthCM(energyEV)
	scale := lambda * lambda * phys.RElectronCM / (2 * math.Pi * totalMass)

	out := OpticalConstants{Delta: deltaSum * scale}
	if cfg.PhotoOnly {
		out.Beta = betaPhotoSum * scale
	} else {
		out.Beta = betaTotalSum * scale
	}

	// 4) Attenuation length, with beta == 0 guarded to +Inf explicitly.
	if out.Beta == 0 {
		out.AttenuationLength = math.Inf(1)
	} else {
		out.AttenuationLength = lambda / (4 * math.Pi * out.Beta)
	}

	return out, nil
}

// DeltaBetaSeq evaluates DeltaBeta over an ordered slice of energies (eV),
// returning one result per energy. All energies are resolved up front; a
// failure at any energy fails the whole sweep.
func DeltaBetaSeq(src atom.ChantlerSource, formulaStr string, density float64, energiesEV []float64, opts ...Option) ([]OpticalConstants, error) {
	out := make([]OpticalConstants, len(energiesEV))
	for i, e := range energiesEV {
		oc, err := DeltaBeta(src, formulaStr, density, e, opts...)
		if err != nil {
			return nil, err
		}
		out[i] = oc
	}

	return out, nil
}
