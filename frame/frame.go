// Package frame owns the time–frequency grid at the heart of spectrogen:
// coordinate axes derived from resolution parameters, additive noise and
// signal injection, a sigma-clipped noise-floor estimate, and SNR
// calibration against it.
//
// All frequencies are Hz and all times seconds; loader collaborators
// hand over raw grids plus scalar resolutions, and canonicalize units
// (e.g. MHzToHz) on the way in.
package frame

import (
	"math"

	"golang.org/x/exp/rand"
)

// defaultSeed seeds frames constructed without WithSeed/WithRand.
// Synthesis stays reproducible by default; pass a seed to vary it.
const defaultSeed = 1

// New constructs a blank Frame from explicit geometry: fchans frequency
// channels of width df (Hz), tchans time samples of length dt (s), with
// fch1 (Hz) as the reference maximum frequency. The grid starts at zero
// unless WithData seeds it.
//
// Returns ErrInvalidGeometry for non-positive counts or resolutions, and
// ErrShapeMismatch when a seed grid does not match (tchans, fchans).
//
// Time complexity: O(tchans·fchans).
func New(fchans, tchans int, df, dt, fch1 float64, opts ...Option) (*Frame, error) {
	if fchans <= 0 || tchans <= 0 || df <= 0 || dt <= 0 {
		return nil, ErrInvalidGeometry
	}

	fr := &Frame{
		fchans:   fchans,
		tchans:   tchans,
		df:       df,
		dt:       dt,
		fmax:     fch1,
		metadata: make(map[string]any),
	}
	for _, opt := range opts {
		opt(fr)
	}
	if fr.rng == nil {
		fr.rng = rand.New(rand.NewSource(defaultSeed))
	}

	if fr.data == nil {
		fr.data = zeroGrid(tchans, fchans)
	} else {
		seed, err := copyGrid(fr.data)
		if err != nil {
			return nil, err
		}
		if len(seed) != tchans || len(seed[0]) != fchans {
			return nil, ErrShapeMismatch
		}
		fr.data = seed
	}
	fr.refreshAxes()

	return fr, nil
}

// FromGrid constructs a Frame around an externally loaded grid with
// known resolutions — the intake contract for file-loader collaborators.
// The grid's shape becomes (tchans, fchans); it is deep-copied.
//
// Returns ErrEmptyGrid / ErrNonRectangular for malformed grids and
// ErrInvalidGeometry for non-positive resolutions.
//
// Time complexity: O(tchans·fchans).
func FromGrid(grid [][]float64, df, dt, fmax float64, opts ...Option) (*Frame, error) {
	if df <= 0 || dt <= 0 {
		return nil, ErrInvalidGeometry
	}
	data, err := copyGrid(grid)
	if err != nil {
		return nil, err
	}

	fr := &Frame{
		fchans:   len(data[0]),
		tchans:   len(data),
		df:       df,
		dt:       dt,
		fmax:     fmax,
		data:     data,
		metadata: make(map[string]any),
	}
	for _, opt := range opts {
		opt(fr)
	}
	if fr.rng == nil {
		fr.rng = rand.New(rand.NewSource(defaultSeed))
	}
	fr.refreshAxes()

	return fr, nil
}

// refreshAxes recomputes fmin, fs and ts from (df, dt, fmax, shape) in
// one step, replacing the axis slices wholesale. It is the only place
// axes are written, so stale axes can never be observed. Idempotent.
func (fr *Frame) refreshAxes() {
	fr.fmin = fr.fmax - float64(fr.fchans)*fr.df

	fs := make([]float64, fr.fchans)
	for i := range fs {
		fs[i] = fr.fmin + float64(i)*fr.df
	}
	ts := make([]float64, fr.tchans)
	for i := range ts {
		ts[i] = float64(i) * fr.dt
	}
	fr.fs, fr.ts = fs, ts
}

// Shape returns the grid dimensions as (tchans, fchans).
func (fr *Frame) Shape() (tchans, fchans int) { return fr.tchans, fr.fchans }

// Df returns the frequency resolution in Hz.
func (fr *Frame) Df() float64 { return fr.df }

// Dt returns the time resolution in seconds.
func (fr *Frame) Dt() float64 { return fr.dt }

// Fmin returns the frequency of the bottom axis edge: fmax - fchans·df.
func (fr *Frame) Fmin() float64 { return fr.fmin }

// Fmax returns the reference maximum frequency (exclusive top edge).
func (fr *Frame) Fmax() float64 { return fr.fmax }

// Fs returns a copy of the ascending channel center-frequency axis.
func (fr *Frame) Fs() []float64 {
	out := make([]float64, len(fr.fs))
	copy(out, fr.fs)

	return out
}

// Ts returns a copy of the time axis, starting at 0.
func (fr *Frame) Ts() []float64 {
	out := make([]float64, len(fr.ts))
	copy(out, fr.ts)

	return out
}

// Index returns the column index whose center frequency is nearest to
// freq, clamped to [0, fchans-1]. Rounding is round-half-away-from-zero
// (math.Round); exact half-channel ties round upward on this ascending
// axis.
//
// Complexity: O(1).
func (fr *Frame) Index(freq float64) int {
	idx := int(math.Round((freq - fr.fs[0]) / fr.df))
	if idx < 0 {
		idx = 0
	}
	if idx >= fr.fchans {
		idx = fr.fchans - 1
	}

	return idx
}

// Frequency returns the center frequency of column idx, clamping idx to
// the axis. Frequency(Index(f)) is the axis value nearest f for any f
// within range.
//
// Complexity: O(1).
func (fr *Frame) Frequency(idx int) float64 {
	if idx < 0 {
		idx = 0
	}
	if idx >= fr.fchans {
		idx = fr.fchans - 1
	}

	return fr.fs[idx]
}

// Data returns a deep copy of the intensity grid.
func (fr *Frame) Data() [][]float64 {
	out, _ := copyGrid(fr.data)

	return out
}

// DataDB returns a deep copy of the grid in decibels: 10·log10(x) per
// cell. Non-positive cells map to -Inf, as log10 defines.
func (fr *Frame) DataDB() [][]float64 {
	out := make([][]float64, fr.tchans)
	for t, row := range fr.data {
		out[t] = make([]float64, fr.fchans)
		for f, v := range row {
			out[t][f] = 10 * math.Log10(v)
		}
	}

	return out
}

// SetData replaces the grid wholesale; its shape becomes the new
// (tchans, fchans) and the axes are refreshed atomically. The noise
// estimate is left as-is: the caller replacing data owns its meaning.
//
// Returns ErrEmptyGrid / ErrNonRectangular for malformed grids.
func (fr *Frame) SetData(grid [][]float64) error {
	data, err := copyGrid(grid)
	if err != nil {
		return err
	}

	fr.data = data
	fr.tchans, fr.fchans = len(data), len(data[0])
	fr.refreshAxes()

	return nil
}

// Metadata returns the frame's opaque key-value store. The engine never
// interprets it; mutations through the returned map are visible to the
// frame.
func (fr *Frame) Metadata() map[string]any { return fr.metadata }

// SetMetadata replaces the metadata store wholesale. A nil m resets it
// to empty.
func (fr *Frame) SetMetadata(m map[string]any) {
	if m == nil {
		m = make(map[string]any)
	}
	fr.metadata = m
}

// AddMetadata sets a single metadata key.
func (fr *Frame) AddMetadata(key string, value any) {
	fr.metadata[key] = value
}

// zeroGrid allocates a tchans × fchans zero-filled grid.
func zeroGrid(tchans, fchans int) [][]float64 {
	grid := make([][]float64, tchans)
	for t := range grid {
		grid[t] = make([]float64, fchans)
	}

	return grid
}

// copyGrid validates that grid is non-empty and rectangular, and returns
// a deep copy to keep the frame immune to external mutation.
func copyGrid(grid [][]float64) ([][]float64, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(grid[0])
	out := make([][]float64, len(grid))
	for t, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		out[t] = make([]float64, w)
		copy(out[t], row)
	}

	return out, nil
}
