package optics

import "errors"

// OpticalConstants is the result of a delta/beta calculation for one
// (formula, density, energy) triple. Values are purely derived and never
// mutated after construction.
type OpticalConstants struct {
	// Delta is the real part of the refractive-index deviation from 1.
	Delta float64

	// Beta is the imaginary part of the refractive-index deviation.
	Beta float64

	// AttenuationLength is the depth in cm at which transmitted intensity
	// falls by 1/e; +Inf when Beta is zero.
	AttenuationLength float64
}

// ErrBadDensity indicates a non-positive density argument.
var ErrBadDensity = errors.New("optics: density must be positive")

// Options configures a delta/beta calculation.
type Options struct {
	// PhotoOnly limits beta to the photo-absorption cross-section instead
	// of the total (photo + scattering) cross-section.
	PhotoOnly bool
}

// Option mutates Options; apply with DeltaBeta(..., WithPhotoOnly()).
type Option func(*Options)

// WithPhotoOnly returns beta from the photo cross-section only.
func WithPhotoOnly() Option {
	return func(o *Options) { o.PhotoOnly = true }
}
