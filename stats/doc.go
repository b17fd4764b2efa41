// Package stats estimates the noise floor of a spectrogram grid with
// outlier-robust, sigma-clipped statistics.
//
// 🚀 What is sigma clipping?
//
//	An iterative estimator for the mean and standard deviation of a
//	population contaminated by a handful of bright outliers (injected
//	signals, RFI spikes). Each round recomputes mean/std over the
//	surviving samples and discards everything outside mean ± σ·std,
//	until no sample is discarded or the iteration cap is reached.
//
// ✨ Key features:
//   - tolerant of arbitrary already-present signal energy
//   - converges in a handful of rounds for Gaussian-dominated grids
//   - flat-slice and 2D-grid entry points
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectrogen/stats"
//
//	mean, std := stats.ClippedGrid(frame.Data(), 3, 5)
//
// Performance:
//
//   - Time:   O(k·N) for N samples and k clipping rounds
//   - Memory: O(N) for the surviving-sample buffer
package stats
