// Package profile defines the polymorphic profile variants, the
// two-argument spectral Shape, and the package's sentinel errors.
package profile

import (
	"errors"
)

// Sentinel errors for profile resolution.
var (
	// ErrShapeMismatch indicates a fixed-array profile whose length does
	// not match the coordinate axis it is resolved against.
	ErrShapeMismatch = errors.New("profile: fixed array length must match the coordinate axis")
	// ErrUnsupportedProfileType indicates a raw profile argument outside
	// the recognized set (func(float64) float64, []float64, float64, int).
	ErrUnsupportedProfileType = errors.New("profile: argument must be a func(float64) float64, []float64 or scalar")
	// ErrUnsupportedProfile indicates a spectral shape name outside the
	// recognized set {box, gaussian, lorentzian, voigt}.
	ErrUnsupportedProfile = errors.New("profile: unknown spectral shape name")
	// ErrBadSubsamples indicates integration requested with fewer than
	// one sub-sample per interval.
	ErrBadSubsamples = errors.New("profile: subsamples must be ≥ 1 when integrating")
)

// kind tags the closed set of profile variants.
type kind int

const (
	// kindConst broadcasts a scalar over the axis (zero value: constant 0).
	kindConst kind = iota
	// kindFunc evaluates a function of one coordinate.
	kindFunc
	// kindFixed reads a pre-computed per-sample array.
	kindFixed
)

// Profile is a stateless intensity description along one coordinate
// axis. The zero value is the constant 0; construct real profiles with
// Func, Fixed, Constant or From. Profiles own no grid state and may be
// reused across frames.
type Profile struct {
	kind  kind
	fn    func(float64) float64
	arr   []float64
	level float64
}

// Shape is a two-argument spectral profile: intensity at frequency f for
// a signal centered on center. Shapes are never resolved to an array —
// the compositor evaluates them over the full (frequency × time) window,
// since the center moves with the path every row.
type Shape func(f, center float64) float64

// Func wraps a function of one coordinate as a Profile.
func Func(fn func(float64) float64) Profile {
	return Profile{kind: kindFunc, fn: fn}
}

// Fixed wraps a pre-computed per-sample array as a Profile. The array
// must match the axis it is later resolved against; Resolve reports
// ErrShapeMismatch otherwise. The slice is not copied — callers reusing
// a buffer across frames should pass a fresh slice.
func Fixed(values []float64) Profile {
	return Profile{kind: kindFixed, arr: values}
}

// Constant wraps a scalar intensity as a Profile broadcast over the axis.
func Constant(level float64) Profile {
	return Profile{kind: kindConst, level: level}
}

// From normalizes a raw profile argument into a Profile:
//
//	func(float64) float64 → Func
//	[]float64             → Fixed
//	float64, int          → Constant
//	Profile               → itself
//
// Any other type reports ErrUnsupportedProfileType.
func From(v any) (Profile, error) {
	switch p := v.(type) {
	case Profile:
		return p, nil
	case func(float64) float64:
		return Func(p), nil
	case []float64:
		return Fixed(p), nil
	case float64:
		return Constant(p), nil
	case int:
		return Constant(float64(p)), nil
	default:
		return Profile{}, ErrUnsupportedProfileType
	}
}
