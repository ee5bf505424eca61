// Package phys collects the physical constants and unit conversions shared
// by the optical-constant calculators.
//
// Conventions:
//
//   - Energies are photon energies in electron-volts (eV) unless a function
//     name says otherwise (the NIST tables sweep in keV).
//   - Lengths are in centimeters; the upstream scattering tables are all
//     CGS-flavored, and mixing in SI here is the classic way to lose a
//     factor of 1e2 somewhere between delta and the attenuation length.
//   - Scattering factors f1/f2 are in electrons per atom.
package phys

import "math"

// Physical constants (CODATA 2018 where applicable).
const (
	// Avogadro is Avogadro's constant in atoms per mole.
	Avogadro = 6.02214076e23

	// RElectronCM is the classical electron radius in centimeters.
	RElectronCM = 2.8179403262e-13

	// PlanckHC is h*c expressed in eV*Angstrom, so that
	// wavelength[Ang] = PlanckHC / energy[eV].
	PlanckHC = 12398.4198433
)

// WavelengthCM converts a photon energy in eV to a wavelength in cm.
// Zero or negative energies have no physical wavelength and yield +Inf.
func WavelengthCM(energyEV float64) float64 {
	if energyEV <= 0 {
		return math.Inf(1)
	}

	return 1e-8 * PlanckHC / energyEV // 1 Angstrom = 1e-8 cm
}

// KeVToEV converts an energy in keV (the NIST table sweep unit) to eV.
func KeVToEV(energyKeV float64) float64 {
	return energyKeV * 1e3
}
