package profile

import "math"

// ConstantPath returns the center frequency of a signal drifting at a
// constant rate: f(t) = fStart + driftRate·t. fStart is in Hz, driftRate
// in Hz/s, and the drift may be negative.
func ConstantPath(fStart, driftRate float64) Profile {
	return Func(func(t float64) float64 {
		return fStart + driftRate*t
	})
}

// SinePath returns a sinusoidal drift superimposed on a constant one:
// f(t) = fStart + driftRate·t + amplitude·sin(2π·t/period).
func SinePath(fStart, driftRate, period, amplitude float64) Profile {
	return Func(func(t float64) float64 {
		return fStart + driftRate*t + amplitude*math.Sin(2*math.Pi*t/period)
	})
}

// SquaredPath returns a quadratically accelerating drift:
// f(t) = fStart + driftRate·t².
func SquaredPath(fStart, driftRate float64) Profile {
	return Func(func(t float64) float64 {
		return fStart + driftRate*t*t
	})
}

// ConstantT returns a time profile of constant intensity.
func ConstantT(level float64) Profile {
	return Constant(level)
}

// SineT returns a time profile oscillating around level:
// I(t) = level + amplitude·sin(2π·t/period).
func SineT(level, period, amplitude float64) Profile {
	return Func(func(t float64) float64 {
		return level + amplitude*math.Sin(2*math.Pi*t/period)
	})
}

// ConstantBP returns a flat bandpass profile of constant gain.
func ConstantBP(level float64) Profile {
	return Constant(level)
}
