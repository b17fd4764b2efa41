// Package profile describes signal intensity as a function of frame
// coordinates, and resolves those descriptions into per-sample arrays.
//
// 🚀 What is a profile?
//
//	Any of three interchangeable shapes of the same idea:
//	  • a function of one coordinate (time or frequency) → intensity
//	  • a pre-computed array, one value per coordinate sample
//	  • a scalar constant, broadcast over the axis
//	plus the two-argument spectral Shape(f, center) that localizes a
//	signal around its drifting center frequency.
//
// ✨ Key features:
//   - one Resolve contract for paths, time profiles and bandpass profiles
//   - optional Riemann sub-sampled integration over each sample interval
//   - stock paths (constant drift, sine, squared) and spectral shapes
//     (box, gaussian, lorentzian, voigt), peak-normalized to 1
//   - profiles are stateless and reusable across frames
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectrogen/profile"
//
//	path := profile.ConstantPath(6.0952e9, -2.0) // Hz, Hz/s
//	vals, err := path.Resolve(ts, dt, true, 10)  // integrated per row
//	if err != nil {
//	  // handle ErrShapeMismatch / ErrBadSubsamples
//	}
//	shape := profile.GaussianShape(50) // FWHM in Hz
//	_ = shape(vals[0]+3, vals[0])      // intensity 3 Hz off center
//
// Resolution is O(N) without integration and O(N·subsamples) with it.
package profile
