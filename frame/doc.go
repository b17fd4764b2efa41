// Package frame provides the Frame: a time–frequency intensity grid
// with derived coordinate axes, additive signal and noise injection,
// and SNR calibration against a sigma-clipped noise-floor estimate.
//
// 🚀 What is a Frame?
//
//	The aggregate a synthetic spectrogram is built in:
//	  • Coordinate model: fs/ts axes derived from (df, dt, fmax, shape)
//	  • Signal compositor: path × time × spectral × bandpass composition
//	  • Bounding-box drifting tones: AddConstantSignal touches only the
//	    columns that can hold signal energy
//	  • Noise injector: Gaussian / truncated-Gaussian floors, direct or
//	    sampled from observation-derived parameter arrays
//	  • Statistics tracker: outlier-robust noise mean/std, kept
//	    consistent as injections accumulate
//
// ✨ Key guarantees:
//   - every injection is purely additive and returns the grid it added
//   - axes refresh atomically; stale axes can never be observed
//   - signal injection never perturbs the noise-floor estimate
//   - deterministic under a fixed seed (WithSeed / WithRand)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/spectrogen/frame"
//	  "github.com/katalvlaran/spectrogen/profile"
//	)
//
//	fr, err := frame.New(1024, 32, 2.79, 18.25, frame.MHzToHz(6095.21),
//	  frame.WithSeed(42))
//	if err != nil { ... }
//	_, _ = fr.AddNoiseTruncated(5, 2, 0)
//	level, _ := fr.IntensityFromSNR(30)
//	_, _ = fr.AddConstantSignal(fr.Frequency(200), 0.002, level, 40,
//	  profile.ShapeGaussian)
//
// A Frame owns its grid exclusively and is not safe for concurrent use;
// callers interleaving injections from multiple goroutines synchronize
// externally.
package frame
