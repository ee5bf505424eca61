// Package optics computes X-ray optical constants for chemical compounds
// from Chantler-tabulated scattering factors.
//
// What:
//
//	DeltaBeta(src, "Fe2O3", 5.24, 12000) returns the anomalous components
//	of the refractive index n = 1 - delta - i*beta and the 1/e attenuation
//	length in cm, at one photon energy in eV. DeltaBetaSeq sweeps an
//	ordered energy slice.
//
// Algorithm (per formula unit):
//
//  1. Parse the formula into a composition.
//  2. Per element: tabulated f1 is the anomalous correction f', so the
//     atomic number Z is added to get conventional f1; f2, mu_photo and
//     mu_total come from the same source.
//  3. Each element contributes weight = density × count × N_A to the
//     delta/beta sums; beta uses f2 scaled by mu_total/mu_photo unless
//     WithPhotoOnly() limits it to the photo cross-section.
//  4. scale = lambda_cm² × r_e / (2π × formula-unit mass);
//     attenuation length = lambda_cm / (4π × beta).
//
// beta can be exactly zero (no absorbing element has tabulated f2 at the
// energy); the attenuation length is then +Inf by an explicit guard, never
// a division fault or NaN.
//
// Errors: ErrBadDensity for non-positive densities; formula and atom
// errors (malformed formula, unknown element, energy outside the tables)
// propagate unchanged.
package optics
