package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectrogen/frame"
)

// The observation geometry used across tests: a BL-style fine-resolution
// block of 1024 channels × 32 integrations.
const (
	obsFchans = 1024
	obsTchans = 32
	obsDf     = 2.7939677238464355 // Hz
	obsDt     = 18.25361108        // s
	obsFch1   = 6095.214842353016  // MHz
)

// newObsFrame builds the shared observation-geometry frame.
func newObsFrame(t *testing.T, opts ...frame.Option) *frame.Frame {
	t.Helper()
	fr, err := frame.New(obsFchans, obsTchans, obsDf, obsDt, frame.MHzToHz(obsFch1), opts...)
	require.NoError(t, err)

	return fr
}

// TestNew_InvalidGeometry verifies that non-positive counts or
// resolutions are rejected at construction.
func TestNew_InvalidGeometry(t *testing.T) {
	cases := []struct {
		name           string
		fchans, tchans int
		df, dt         float64
	}{
		{"zero fchans", 0, 32, 1, 1},
		{"zero tchans", 1024, 0, 1, 1},
		{"negative df", 1024, 32, -1, 1},
		{"zero dt", 1024, 32, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := frame.New(tc.fchans, tc.tchans, tc.df, tc.dt, 1e9)
			assert.ErrorIs(t, err, frame.ErrInvalidGeometry)
		})
	}
}

// TestNew_DerivedAxes verifies axis lengths, monotone constant spacing,
// and the fmin/fmax relation on the observation geometry.
func TestNew_DerivedAxes(t *testing.T) {
	fr := newObsFrame(t)

	tchans, fchans := fr.Shape()
	assert.Equal(t, obsTchans, tchans)
	assert.Equal(t, obsFchans, fchans)

	fs, ts := fr.Fs(), fr.Ts()
	require.Len(t, fs, obsFchans)
	require.Len(t, ts, obsTchans)

	assert.InDelta(t, 6095214842.353016, fr.Fmax(), 1e-3)
	assert.InDelta(t, 6095211981.330067, fr.Fmin(), 1e-3)
	assert.Equal(t, fr.Fmin(), fs[0], "axis starts at fmin")

	for i := 1; i < len(fs); i++ {
		assert.InDelta(t, obsDf, fs[i]-fs[i-1], 1e-9, "constant df spacing at %d", i)
	}
	assert.Zero(t, ts[0], "time axis starts at 0")
	for i := 1; i < len(ts); i++ {
		assert.InDelta(t, obsDt, ts[i]-ts[i-1], 1e-9, "constant dt spacing at %d", i)
	}
}

// TestNew_BlankData verifies a zero-initialized grid.
func TestNew_BlankData(t *testing.T) {
	fr := newObsFrame(t)
	for _, row := range fr.Data() {
		for _, v := range row {
			require.Zero(t, v)
		}
	}
	mean, std := fr.NoiseStats()
	assert.Zero(t, mean)
	assert.Zero(t, std)
	assert.False(t, fr.HasNoise())
}

// TestNew_WithData verifies seeding from an existing grid and the shape
// check against the declared geometry.
func TestNew_WithData(t *testing.T) {
	seed := [][]float64{{1, 2, 3}, {4, 5, 6}}

	fr, err := frame.New(3, 2, 1, 1, 3, frame.WithData(seed))
	require.NoError(t, err)
	assert.Equal(t, seed, fr.Data())

	seed[0][0] = 99
	assert.Equal(t, 1.0, fr.Data()[0][0], "seed grid must be deep-copied")

	_, err = frame.New(4, 2, 1, 1, 4, frame.WithData(seed))
	assert.ErrorIs(t, err, frame.ErrShapeMismatch)
}

// TestFromGrid_LoaderIntake verifies construction from an externally
// loaded grid plus resolutions, including malformed-grid errors.
func TestFromGrid_LoaderIntake(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	fr, err := frame.FromGrid(grid, 2, 10, 100)
	require.NoError(t, err)

	tchans, fchans := fr.Shape()
	assert.Equal(t, 3, tchans, "grid shape defines tchans")
	assert.Equal(t, 2, fchans, "grid shape defines fchans")
	assert.Equal(t, 96.0, fr.Fmin(), "fmin = fmax - fchans·df")
	assert.Equal(t, grid, fr.Data())

	_, err = frame.FromGrid(nil, 2, 10, 100)
	assert.ErrorIs(t, err, frame.ErrEmptyGrid)
	_, err = frame.FromGrid([][]float64{{1, 2}, {3}}, 2, 10, 100)
	assert.ErrorIs(t, err, frame.ErrNonRectangular)
	_, err = frame.FromGrid(grid, 0, 10, 100)
	assert.ErrorIs(t, err, frame.ErrInvalidGeometry)
}

// TestIndexFrequency_RoundTrip verifies that Frequency(Index(f)) returns
// the axis value nearest f for in-range frequencies.
func TestIndexFrequency_RoundTrip(t *testing.T) {
	fr := newObsFrame(t)
	fs := fr.Fs()

	for _, idx := range []int{0, 1, 200, 511, 1023} {
		assert.Equal(t, fs[idx], fr.Frequency(fr.Index(fs[idx])), "exact center at %d", idx)
		off := fs[idx] + 0.3*obsDf
		assert.Equal(t, fs[idx], fr.Frequency(fr.Index(off)), "nearest center at %d", idx)
	}

	assert.Equal(t, 0, fr.Index(fr.Fmin()-1e6), "below range clamps to 0")
	assert.Equal(t, obsFchans-1, fr.Index(fr.Fmax()+1e6), "above range clamps to last")
}

// TestSetData_RefreshesAxes verifies wholesale grid replacement with an
// atomic axis/shape refresh.
func TestSetData_RefreshesAxes(t *testing.T) {
	fr := newObsFrame(t)

	require.NoError(t, fr.SetData([][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}))

	tchans, fchans := fr.Shape()
	assert.Equal(t, 2, tchans)
	assert.Equal(t, 4, fchans)
	assert.Len(t, fr.Fs(), 4, "frequency axis follows the new shape")
	assert.Len(t, fr.Ts(), 2, "time axis follows the new shape")
	assert.InDelta(t, fr.Fmax()-4*obsDf, fr.Fmin(), 1e-6, "fmin rederived from the new width")

	assert.ErrorIs(t, fr.SetData([][]float64{}), frame.ErrEmptyGrid)
}

// TestDataDB_LogScaling verifies the decibel view.
func TestDataDB_LogScaling(t *testing.T) {
	fr, err := frame.FromGrid([][]float64{{1, 10, 100}}, 1, 1, 3)
	require.NoError(t, err)

	db := fr.DataDB()
	assert.InDelta(t, 0.0, db[0][0], 1e-12)
	assert.InDelta(t, 10.0, db[0][1], 1e-12)
	assert.InDelta(t, 20.0, db[0][2], 1e-12)
}

// TestMetadata_OpaqueStore verifies the user-managed key-value store.
func TestMetadata_OpaqueStore(t *testing.T) {
	fr := newObsFrame(t)

	fr.AddMetadata("source", "synthetic")
	fr.AddMetadata("snr", 30.0)
	assert.Equal(t, "synthetic", fr.Metadata()["source"])

	fr.SetMetadata(map[string]any{"only": 1})
	assert.Len(t, fr.Metadata(), 1, "SetMetadata replaces wholesale")

	fr.SetMetadata(nil)
	assert.Empty(t, fr.Metadata(), "nil resets to empty")
}
