package frame

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectrogen/profile"
)

// defaultSubsamples is substituted for a zero subsample count, so a
// partially filled SignalOptions behaves like DefaultSignalOptions.
const defaultSubsamples = 10

// AddSignal composes a synthetic signal from a drift path, a
// time-intensity profile, a two-argument spectral shape, and a bandpass
// profile, and adds it into the grid.
//
// path, tProfile and bpProfile are polymorphic: a func(float64) float64,
// a []float64 matching the axis, a scalar, or a profile.Profile
// (profile.ErrUnsupportedProfileType otherwise). shape is always a
// genuine two-argument callable — the signal center moves with the path
// every row, so it is evaluated over the full (frequency × time) window
// and never resolved to an array.
//
// Algorithm outline:
//  1. Resolve opts.FreqWindow to a column range (default: full axis).
//  2. Build the restricted frequency axis; with IntegrateF, expand it to
//     FSubsamples sub-points per column.
//  3. Resolve tProfile against the time axis (integrated per IntegrateT).
//  4. Resolve path against the time axis (integrated per IntegratePath).
//  5. Resolve bpProfile against the restricted frequency axis — a
//     fixed-array bandpass must match that axis exactly (sub-divided
//     when IntegrateF).
//  6. signal[r,c] = t[r] · shape(freq[c], path[r]) · bp[c] over the window.
//  7. With IntegrateF, average each group of FSubsamples sub-columns
//     back down to one physical column (Riemann mean).
//  8. Add the patch into the grid, in place and additive.
//  9. Return a full-size grid holding the patch zero-padded outside the
//     window, so callers can inspect this contribution alone.
//
// The operation is purely additive, deterministic for deterministic
// profiles, and never touches the noise-floor estimate: signal is not
// noise. A zero-width window yields an all-zero patch.
//
// Time complexity: O(tchans·cols·FSubsamples) over the window's cols.
func (fr *Frame) AddSignal(path, tProfile any, shape profile.Shape, bpProfile any, opts *SignalOptions) ([][]float64, error) {
	o := DefaultSignalOptions()
	if opts != nil {
		o = *opts
	}
	if o.TSubsamples == 0 {
		o.TSubsamples = defaultSubsamples
	}
	if o.FSubsamples == 0 {
		o.FSubsamples = defaultSubsamples
	}
	if shape == nil {
		return nil, profile.ErrUnsupportedProfileType
	}

	pathP, err := profile.From(path)
	if err != nil {
		return nil, err
	}
	tP, err := profile.From(tProfile)
	if err != nil {
		return nil, err
	}
	bpP, err := profile.From(bpProfile)
	if err != nil {
		return nil, err
	}

	lo, hi := fr.columnRange(o.FreqWindow)

	return fr.composeSignal(lo, hi, pathP, tP, shape, bpP, o)
}

// columnRange resolves a frequency window to the half-open column range
// [lo, hi) of channels whose center frequency lies in [FStart, FStop),
// clamped to the axis. Bounds may arrive in either order; nil selects
// the full axis.
func (fr *Frame) columnRange(w *Window) (lo, hi int) {
	if w == nil {
		return 0, fr.fchans
	}
	a, b := w.FStart, w.FStop
	if a > b {
		a, b = b, a
	}
	lo = int(math.Ceil((a - fr.fs[0]) / fr.df))
	hi = int(math.Ceil((b - fr.fs[0]) / fr.df))

	return clampRange(lo, hi, fr.fchans)
}

// clampRange clamps the half-open range [lo, hi) into [0, n), collapsing
// inverted ranges to empty.
func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// composeSignal is the compositor core shared by AddSignal and
// AddConstantSignal: profiles are already resolved to the closed variant
// set and the window to a clamped column range.
func (fr *Frame) composeSignal(lo, hi int, pathP, tP profile.Profile, shape profile.Shape, bpP profile.Profile, o SignalOptions) ([][]float64, error) {
	full := zeroGrid(fr.tchans, fr.fchans)
	cols := hi - lo
	if cols == 0 {
		return full, nil
	}

	sub := 1
	if o.IntegrateF {
		if o.FSubsamples < 1 {
			return nil, profile.ErrBadSubsamples
		}
		sub = o.FSubsamples
	}

	// Restricted frequency axis, sub-divided when integrating. Each
	// column's [fs[c], fs[c]+df) interval contributes sub left-endpoint
	// sub-points.
	step := fr.df / float64(sub)
	faxis := make([]float64, cols*sub)
	for c := 0; c < cols; c++ {
		base := fr.fs[lo+c]
		for j := 0; j < sub; j++ {
			faxis[c*sub+j] = base + float64(j)*step
		}
	}

	tvals, err := tP.Resolve(fr.ts, fr.dt, o.IntegrateT, o.TSubsamples)
	if err != nil {
		return nil, err
	}
	pathVals, err := pathP.Resolve(fr.ts, fr.dt, o.IntegratePath, o.TSubsamples)
	if err != nil {
		return nil, err
	}
	bpVals, err := bpP.Resolve(faxis, step, false, 0)
	if err != nil {
		return nil, err
	}

	for r := 0; r < fr.tchans; r++ {
		row := full[r][lo:hi]
		center := pathVals[r]
		for c := 0; c < cols; c++ {
			total := 0.0
			for j := 0; j < sub; j++ {
				fi := c*sub + j
				total += shape(faxis[fi], center) * bpVals[fi]
			}
			row[c] = tvals[r] * total / float64(sub)
		}
		floats.Add(fr.data[r][lo:hi], row)
	}

	return full, nil
}
