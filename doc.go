// Package xrayopt computes X-ray optical constants for materials:
// chemical-formula parsing, tabulated atomic scattering factors and
// attenuation coefficients, and the derived quantities delta, beta and
// attenuation length used in X-ray optics.
//
// The module is organized under focused subpackages:
//
//	phys/     — physical constants and energy/wavelength conversion
//	formula/  — chemical formula parser (nested groups, fractional counts)
//	atom/     — element table plus Elam and Chantler data-file backends
//	material/ — named-material registry over a flat-file store
//	optics/   — delta/beta/attenuation-length calculator
//	nist/     — NIST FFAST page parsing and the table-building service
//	interp/   — interpolants over formatted optical tables
//
// Two commands sit on top: cmd/deltabeta fetches and prints an optical
// table for a formula, and cmd/matdb maintains the materials database.
package xrayopt
