package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectrogen/frame"
	"github.com/katalvlaran/spectrogen/profile"
)

// TestAddConstantSignal_UnknownShape verifies the fixed-set shape gate.
func TestAddConstantSignal_UnknownShape(t *testing.T) {
	fr := newObsFrame(t)

	_, err := fr.AddConstantSignal(fr.Frequency(200), 0, 1, 40, "sinc")
	assert.ErrorIs(t, err, profile.ErrUnsupportedProfile)
}

// TestAddConstantSignal_ZeroDriftZeroWidth verifies that a degenerate
// box tone lights exactly the single column nearest its start frequency.
func TestAddConstantSignal_ZeroDriftZeroWidth(t *testing.T) {
	fr := newObsFrame(t)

	signal, err := fr.AddConstantSignal(fr.Frequency(200), 0, 3, 0, profile.ShapeBox)
	require.NoError(t, err)

	for r, row := range signal {
		for c, v := range row {
			if c == 200 {
				assert.Equal(t, 3.0, v, "tone column at row %d", r)
			} else {
				require.Zero(t, v, "cell (%d,%d) outside the tone", r, c)
			}
		}
	}
}

// TestAddConstantSignal_MatchesFullGridCompositor verifies that the
// bounding-box path computes exactly what the unrestricted compositor
// would, column for column.
func TestAddConstantSignal_MatchesFullGridCompositor(t *testing.T) {
	boxed := newObsFrame(t)
	full := newObsFrame(t)
	fStart := boxed.Frequency(500)
	const drift, level, width = -1.5, 2.0, 30.0

	got, err := boxed.AddConstantSignal(fStart, drift, level, width, profile.ShapeGaussian)
	require.NoError(t, err)

	want, err := full.AddSignal(
		profile.ConstantPath(fStart, drift),
		profile.ConstantT(level),
		profile.GaussianShape(width),
		profile.ConstantBP(1),
		nil)
	require.NoError(t, err)

	// The gaussian tail extends past the ±2·width bounding window; its
	// amplitude there is below exp(-16·ln2) ≈ 7e-5 of the peak.
	tail := level * 1e-4
	for r := range want {
		for c := range want[r] {
			if got[r][c] != 0 {
				assert.InDelta(t, want[r][c], got[r][c], 1e-9, "cell (%d,%d)", r, c)
			} else {
				assert.LessOrEqual(t, want[r][c], tail, "clipped tail at (%d,%d)", r, c)
			}
		}
	}
}

// TestAddConstantSignal_NegativeDriftWindow verifies that the bounding
// window follows a falling tone: energy appears below the start column
// and never above the +2·width guard.
func TestAddConstantSignal_NegativeDriftWindow(t *testing.T) {
	fr := newObsFrame(t)
	// Drift covering ~40 columns over the frame: -40·df/((tchans-1)·dt).
	drift := -40 * obsDf / (float64(obsTchans-1) * obsDt)

	signal, err := fr.AddConstantSignal(fr.Frequency(500), drift, 1, 3*obsDf, profile.ShapeBox)
	require.NoError(t, err)

	last := len(signal) - 1
	assert.Positive(t, signal[0][500], "tone starts on its column")
	assert.Positive(t, signal[last][460], "tone ends ~40 columns lower")
	for c := 510; c < obsFchans; c++ {
		require.Zero(t, signal[0][c], "no energy above the guard at col %d", c)
	}
}

// TestAddConstantSignal_ClampsAtEdges verifies that a window running off
// the axis is clamped instead of failing.
func TestAddConstantSignal_ClampsAtEdges(t *testing.T) {
	fr := newObsFrame(t)

	signal, err := fr.AddConstantSignal(fr.Frequency(2), 0, 1, 40, profile.ShapeGaussian)
	require.NoError(t, err)
	assert.Positive(t, signal[0][2], "edge tone still composes")

	signal, err = fr.AddConstantSignal(fr.Frequency(obsFchans-2), 0, 1, 40, profile.ShapeGaussian)
	require.NoError(t, err)
	assert.Positive(t, signal[0][obsFchans-2], "top-edge tone still composes")
}

// TestEndToEnd_DriftingToneOverNoise replays the reference scenario: a
// truncated-Gaussian floor, an SNR-30 gaussian tone at column 200 with a
// slow positive drift, and detection of a contiguous band above
// mean + 3·std in every row.
func TestEndToEnd_DriftingToneOverNoise(t *testing.T) {
	fr := newObsFrame(t, frame.WithSeed(42))

	_, err := fr.AddNoiseTruncated(5, 2, 0)
	require.NoError(t, err)
	noiseMean, noiseStd := fr.NoiseStats()

	level, err := fr.IntensityFromSNR(30)
	require.NoError(t, err)
	assert.InDelta(t, 30*noiseStd/5.656854249492381, level, 1e-9)

	const drift = 0.002 // Hz/s
	signal, err := fr.AddConstantSignal(fr.Frequency(200), drift, level, 40, profile.ShapeGaussian)
	require.NoError(t, err)

	threshold := noiseMean + 3*noiseStd
	data := fr.Data()
	for r, row := range data {
		hot := 0
		for c := 190; c <= 210; c++ {
			if row[c] > threshold {
				hot++
			}
		}
		assert.Greater(t, hot, 3, "row %d must carry a bright band", r)

		// The tone's center drifts by drift·dt/df columns per row.
		wantCenter := 200 + drift*float64(r)*obsDt/obsDf
		assert.InDelta(t, wantCenter, float64(argmaxRow(signal[r])), 1.0, "row %d center", r)
	}
}

// argmaxRow returns the column index of the row's maximum value.
func argmaxRow(row []float64) int {
	best := 0
	for c, v := range row {
		if v > row[best] {
			best = c
		}
	}

	return best
}
