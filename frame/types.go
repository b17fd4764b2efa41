// Package frame defines the Frame aggregate, its construction options,
// and the package's sentinel errors.
package frame

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Sentinel errors for frame operations.
var (
	// ErrInvalidGeometry indicates non-positive channel counts or
	// resolutions at construction.
	ErrInvalidGeometry = errors.New("frame: channel counts and resolutions must be positive")
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("frame: input grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("frame: all grid rows must have the same length")
	// ErrShapeMismatch indicates a seed grid whose shape does not match
	// the declared (tchans, fchans) geometry.
	ErrShapeMismatch = errors.New("frame: grid shape must match (tchans, fchans)")
	// ErrBadNoise indicates a negative noise standard deviation or empty
	// observation-parameter arrays.
	ErrBadNoise = errors.New("frame: noise std must be ≥ 0 and parameter arrays non-empty")
	// ErrLengthMismatch indicates observation-parameter arrays that must
	// share an index but differ in length.
	ErrLengthMismatch = errors.New("frame: index-shared parameter arrays must have equal length")
	// ErrNoNoise indicates SNR↔intensity calibration requested while the
	// noise floor estimate is still zero-width.
	ErrNoNoise = errors.New("frame: no noise present, SNR calibration undefined")
)

// MHz is the Hz value of one megahertz, for canonicalizing loader-supplied
// frequencies. The engine works exclusively in Hz and seconds.
const MHz = 1e6

// MHzToHz canonicalizes a frequency quantity given in MHz to Hz.
func MHzToHz(v float64) float64 { return v * MHz }

// Frame is a time–frequency intensity grid together with its coordinate
// axes, robust noise-floor estimate, and opaque metadata. A Frame owns
// its grid exclusively; it is not safe for concurrent use, since every
// injection read-modify-writes the shared grid and noise stats.
//
// Construct with New (explicit geometry) or FromGrid (loader intake).
// The grid is mutated additively by noise and signal injection over the
// Frame's lifetime; axes are recomputed atomically whenever geometry or
// shape changes, never edited in place.
type Frame struct {
	fchans int // grid width: frequency samples
	tchans int // grid height: time samples

	df float64 // frequency resolution, Hz
	dt float64 // time resolution, s

	fmin float64   // fmax - fchans·df
	fmax float64   // reference maximum frequency (exclusive top edge), Hz
	fs   []float64 // ascending channel center frequencies, len fchans
	ts   []float64 // sample times starting at 0, len tchans

	data [][]float64 // tchans × fchans intensity grid

	noiseMean float64
	noiseStd  float64
	hasNoise  bool // set by the first completed noise injection

	metadata map[string]any

	rng *rand.Rand
}

// Option configures Frame construction.
type Option func(*Frame)

// WithData seeds the frame with an existing grid instead of zeros. The
// grid must match the declared (tchans, fchans) shape; it is deep-copied.
func WithData(grid [][]float64) Option {
	return func(fr *Frame) { fr.data = grid }
}

// WithSeed seeds the frame's random source, making every noise draw and
// observation-parameter sample reproducible.
func WithSeed(seed uint64) Option {
	return func(fr *Frame) { fr.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an external random source, e.g. one shared across
// the frames of a dataset.
func WithRand(rng *rand.Rand) Option {
	return func(fr *Frame) { fr.rng = rng }
}

// Window is a frequency interval in Hz, resolved by the compositor to
// the contiguous run of columns whose center frequency lies in
// [FStart, FStop). The bounds may be given in either order; a zero-width
// window is legal and selects no columns.
type Window struct {
	FStart float64
	FStop  float64
}

// SignalOptions configures signal composition.
//   - FreqWindow: restrict evaluation to a frequency sub-window
//     (nil: the full axis).
//   - IntegratePath, IntegrateT: Riemann sub-sampled integration of the
//     path / time profile over each time sample (TSubsamples points).
//   - IntegrateF: evaluate FSubsamples sub-points per column and average
//     them back down to one physical column.
//   - TSubsamples, FSubsamples: sub-points per sample when integrating
//     (default 10).
type SignalOptions struct {
	FreqWindow    *Window
	IntegratePath bool
	IntegrateT    bool
	IntegrateF    bool
	TSubsamples   int
	FSubsamples   int
}

// DefaultSignalOptions returns SignalOptions with no window, no
// integration, and 10 sub-samples per axis.
func DefaultSignalOptions() SignalOptions {
	return SignalOptions{
		TSubsamples: 10,
		FSubsamples: 10,
	}
}

// ObsOptions configures observation-sampled noise injection.
//   - ShareIndex: draw one random index shared by all parameter arrays
//     (they must have equal length) instead of sampling each parameter's
//     marginal distribution independently.
//   - RefDt: the time resolution the parameters were measured at; when
//     positive, sampled parameters are rescaled linearly by dt/RefDt
//     before use. Zero means "same resolution, no rescale".
type ObsOptions struct {
	ShareIndex bool
	RefDt      float64
}

// DefaultObsOptions returns ObsOptions with index sharing on and no
// reference rescaling.
func DefaultObsOptions() ObsOptions {
	return ObsOptions{ShareIndex: true}
}
