package frame

import (
	"math"

	"github.com/katalvlaran/spectrogen/profile"
)

// AddConstantSignal injects a constant-drift-rate, constant-intensity
// narrowband signal, evaluating only the minimal column window that can
// contain its energy — essential when many signals go into large grids.
//
// fStart is the center frequency at t = 0 (Hz), driftRate in Hz/s (sign
// sets drift direction), level the peak intensity, width the spectral
// full width at half maximum (Hz), and shapeName one of profile's fixed
// set {box, gaussian, lorentzian, voigt}
// (profile.ErrUnsupportedProfile otherwise).
//
// Bounding-window derivation, in column units:
//  1. start — the column nearest fStart (see Index for rounding).
//  2. offset — ±2·width from center, sign matching the drift direction.
//  3. drift — the total drift over the full time extent:
//     dt·(tchans-1)·driftRate/df.
//  4. the window is the interval merge of (start − offset) and
//     (start + offset + drift): [min, max] rounded outward and clamped
//     to [0, fchans], so fractional bounds never clip signal energy.
//
// Delegates to the signal compositor with this window, a constant path,
// a constant time profile and a flat unit bandpass; returns the same
// zero-padded full-size patch AddSignal does.
//
// Time complexity: O(tchans·window), independent of fchans.
func (fr *Frame) AddConstantSignal(fStart, driftRate, level, width float64, shapeName string) ([][]float64, error) {
	shape, err := profile.ShapeByName(shapeName, width)
	if err != nil {
		return nil, err
	}

	start := float64(fr.Index(fStart))
	offset := 2 * width / fr.df
	if driftRate < 0 {
		offset = -offset
	}
	drift := fr.dt * float64(fr.tchans-1) * driftRate / fr.df

	a, b := interval(start-offset, start+offset+drift)
	lo, hi := clampRange(int(math.Floor(a)), int(math.Ceil(b))+1, fr.fchans)

	return fr.composeSignal(lo, hi,
		profile.ConstantPath(fStart, driftRate),
		profile.ConstantT(level),
		shape,
		profile.ConstantBP(1),
		DefaultSignalOptions())
}

// interval orders two bounds as [min, max], independent of the
// derivation order of its arguments.
func interval(a, b float64) (lo, hi float64) {
	if a > b {
		return b, a
	}

	return a, b
}
