package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian returns a tchans × fchans grid of N(mean, std²) samples drawn
// from rng. Non-positive std yields the constant mean plane.
//
// Time complexity: O(tchans·fchans).
func Gaussian(rng *rand.Rand, mean, std float64, tchans, fchans int) [][]float64 {
	grid := make([][]float64, tchans)
	if std <= 0 {
		for t := range grid {
			grid[t] = make([]float64, fchans)
			for f := range grid[t] {
				grid[t][f] = mean
			}
		}

		return grid
	}

	n := distuv.Normal{Mu: mean, Sigma: std, Src: rng}
	for t := range grid {
		grid[t] = make([]float64, fchans)
		for f := range grid[t] {
			grid[t][f] = n.Rand()
		}
	}

	return grid
}

// TruncatedGaussian returns a tchans × fchans grid of N(mean, std²)
// samples left-truncated at min, drawn from rng.
//
// Truncation uses the inverse-CDF transform: u is drawn uniformly from
// [CDF(min), 1) and mapped through the normal quantile, so every draw
// lands in [min, +∞) without a rejection loop.
//
// Non-positive std yields the constant max(mean, min) plane.
//
// Time complexity: O(tchans·fchans).
func TruncatedGaussian(rng *rand.Rand, mean, std, min float64, tchans, fchans int) [][]float64 {
	grid := make([][]float64, tchans)
	if std <= 0 {
		level := mean
		if level < min {
			level = min
		}
		for t := range grid {
			grid[t] = make([]float64, fchans)
			for f := range grid[t] {
				grid[t][f] = level
			}
		}

		return grid
	}

	n := distuv.Normal{Mu: mean, Sigma: std, Src: rng}
	lo := n.CDF(min)
	span := 1 - lo
	for t := range grid {
		grid[t] = make([]float64, fchans)
		for f := range grid[t] {
			u := lo + span*rng.Float64()
			grid[t][f] = n.Quantile(u)
		}
	}

	return grid
}

// SampleIndex draws one uniform index into a collection of length n.
// n must be positive; the caller validates emptiness.
func SampleIndex(rng *rand.Rand, n int) int {
	return rng.Intn(n)
}

// Sample draws one element of values uniformly at random — the marginal
// sampling used when observation parameters are not index-shared.
func Sample(rng *rand.Rand, values []float64) float64 {
	return values[SampleIndex(rng, len(values))]
}
