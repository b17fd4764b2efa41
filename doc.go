// Package spectrogen synthesizes two-dimensional time–frequency intensity
// grids ("frames") that mimic radio-telescope spectrogram data, for
// injecting artificial narrowband drifting signals and calibrated noise
// into blank canvases or observation-derived grids.
//
// 🚀 What is spectrogen?
//
//	A deterministic, in-memory synthesis library that brings together:
//		• Frames: time–frequency grids with derived coordinate axes
//		• Signals: arbitrary path × time × frequency × bandpass composition
//		• Drifting tones: constant-drift signals with bounding-box evaluation
//		• Noise: Gaussian & truncated-Gaussian floors, observation-sampled
//		• Calibration: SNR ↔ intensity against a sigma-clipped noise floor
//
// ✨ Why choose spectrogen?
//
//   - Deterministic – seedable RNG per frame, reproducible datasets
//   - Additive – every injection returns exactly the grid it added
//   - Localized – narrowband signals never pay for the full grid
//   - Extensible – profiles are plain functions, arrays, or scalars
//
// Under the hood, everything is organized under four subpackages:
//
//	frame/   — the Frame aggregate: axes, data, noise stats, injection
//	profile/ — polymorphic intensity profiles, paths & spectral shapes
//	dist/    — Gaussian / truncated-Gaussian grid sampling
//	stats/   — sigma-clipped (outlier-robust) mean & std estimation
//
// Quick ASCII example:
//
//	    f ──────────────▶
//	  t │ ░░░░░▓░░░░░░░░░
//	  │ │ ░░░░░░▓░░░░░░░░
//	  ▼ │ ░░░░░░░▓░░░░░░░
//
//	a narrowband tone drifting down in frequency over a noisy floor.
//
// Reading, writing and plotting spectrogram files are external
// collaborators: the frame speaks "raw grid + resolutions" in both
// directions and nothing else.
//
//	go get github.com/katalvlaran/spectrogen/frame
package spectrogen
