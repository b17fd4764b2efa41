package frame

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectrogen/dist"
	"github.com/katalvlaran/spectrogen/stats"
)

// Noise-floor estimation parameters: iteratively clip samples beyond
// clipSigma standard deviations from the running mean, for at most
// clipIters rounds or until convergence.
const (
	clipSigma = 3
	clipIters = 5
)

// AddNoise draws one Gaussian N(mean, std²) sample of the grid's shape,
// adds it into the grid, and updates the noise-floor estimate. The first
// injection seeds the estimate with (mean, std) directly — a cheap
// approximation; every later injection recomputes it from the
// accumulated grid with sigma clipping, so a handful of bright signal
// pixels cannot throw it off.
//
// Returns the noise grid that was added, so callers can inspect it
// independent of accumulated signal. std < 0 reports ErrBadNoise.
//
// Time complexity: O(tchans·fchans).
func (fr *Frame) AddNoise(mean, std float64) ([][]float64, error) {
	if std < 0 {
		return nil, ErrBadNoise
	}

	noise := dist.Gaussian(fr.rng, mean, std, fr.tchans, fr.fchans)
	fr.accumulateNoise(noise, mean, std)

	return noise, nil
}

// AddNoiseTruncated behaves as AddNoise with a left-truncated Gaussian:
// every drawn sample is ≥ min. Radiometer power data is non-negative, so
// min = 0 keeps synthetic floors physical.
//
// The first-injection estimate is still seeded with the requested
// (mean, std), not the truncated distribution's moments.
func (fr *Frame) AddNoiseTruncated(mean, std, min float64) ([][]float64, error) {
	if std < 0 {
		return nil, ErrBadNoise
	}

	noise := dist.TruncatedGaussian(fr.rng, mean, std, min, fr.tchans, fr.fchans)
	fr.accumulateNoise(noise, mean, std)

	return noise, nil
}

// AddNoiseFromObs injects noise with parameters sampled from
// observation-derived candidate arrays. With opts.ShareIndex (the
// default) one random index selects a matched (mean, std[, min]) triple;
// the arrays must then have equal length (ErrLengthMismatch otherwise).
// Without it, each parameter's marginal distribution is sampled
// independently and the arrays may differ in length.
//
// mins may be nil for plain Gaussian noise. When opts.RefDt is positive,
// sampled parameters are rescaled linearly by dt/RefDt, mapping floors
// measured at a reference integration time onto this frame's.
//
// A nil opts means DefaultObsOptions. Empty parameter arrays report
// ErrBadNoise.
func (fr *Frame) AddNoiseFromObs(means, stds, mins []float64, opts *ObsOptions) ([][]float64, error) {
	o := DefaultObsOptions()
	if opts != nil {
		o = *opts
	}
	if len(means) == 0 || len(stds) == 0 || (mins != nil && len(mins) == 0) {
		return nil, ErrBadNoise
	}

	var mean, std float64
	min := math.Inf(-1)
	hasMin := mins != nil

	if o.ShareIndex {
		if len(means) != len(stds) || (hasMin && len(mins) != len(means)) {
			return nil, ErrLengthMismatch
		}
		idx := dist.SampleIndex(fr.rng, len(means))
		mean, std = means[idx], stds[idx]
		if hasMin {
			min = mins[idx]
		}
	} else {
		mean = dist.Sample(fr.rng, means)
		std = dist.Sample(fr.rng, stds)
		if hasMin {
			min = dist.Sample(fr.rng, mins)
		}
	}

	if o.RefDt > 0 {
		scale := fr.dt / o.RefDt
		mean *= scale
		std *= scale
		if hasMin {
			min *= scale
		}
	}

	if hasMin {
		return fr.AddNoiseTruncated(mean, std, min)
	}

	return fr.AddNoise(mean, std)
}

// accumulateNoise adds the drawn grid into the frame and advances the
// noise-floor tracker. The estimate must observe the grid strictly after
// the additive mutation completes.
func (fr *Frame) accumulateNoise(noise [][]float64, mean, std float64) {
	for t, row := range noise {
		floats.Add(fr.data[t], row)
	}

	if !fr.hasNoise {
		fr.noiseMean, fr.noiseStd = mean, std
		fr.hasNoise = true

		return
	}
	fr.noiseMean, fr.noiseStd = stats.ClippedGrid(fr.data, clipSigma, clipIters)
}

// NoiseStats returns the current robust noise-floor estimate. Both are
// zero until the first injection.
func (fr *Frame) NoiseStats() (mean, std float64) { return fr.noiseMean, fr.noiseStd }

// HasNoise reports whether any noise injection has completed, including
// a degenerate zero-mean, zero-std one.
func (fr *Frame) HasNoise() bool { return fr.hasNoise }

// IntensityFromSNR converts a target signal-to-noise ratio into the
// per-sample intensity that achieves it against the current noise floor:
// snr·noiseStd/√tchans. Reports ErrNoNoise while the floor estimate has
// zero width.
func (fr *Frame) IntensityFromSNR(snr float64) (float64, error) {
	if fr.noiseStd == 0 {
		return 0, ErrNoNoise
	}

	return snr * fr.noiseStd / math.Sqrt(float64(fr.tchans)), nil
}

// SNRFromIntensity is the inverse calibration: x·√tchans/noiseStd.
// Reports ErrNoNoise while the floor estimate has zero width.
func (fr *Frame) SNRFromIntensity(x float64) (float64, error) {
	if fr.noiseStd == 0 {
		return 0, ErrNoNoise
	}

	return x * math.Sqrt(float64(fr.tchans)) / fr.noiseStd, nil
}
