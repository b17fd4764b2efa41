package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Clipped returns the sigma-clipped mean and standard deviation of values.
//
// Algorithm outline:
//  1. Compute mean and std of the current population.
//  2. Discard samples outside mean ± sigma·std.
//  3. Repeat until no sample was discarded or maxIter rounds elapsed.
//  4. Report mean/std of the surviving population.
//
// A non-positive maxIter performs a single unclipped pass. An empty
// input yields (0, 0). Populations of one sample report std = 0.
//
// Time complexity: O(maxIter·N). Memory: O(N).
func Clipped(values []float64, sigma float64, maxIter int) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	kept := make([]float64, len(values))
	copy(kept, values)

	mean, std = meanStd(kept)
	for iter := 0; iter < maxIter; iter++ {
		lo, hi := mean-sigma*std, mean+sigma*std
		next := kept[:0]
		for _, v := range kept {
			if v >= lo && v <= hi {
				next = append(next, v)
			}
		}
		if len(next) == len(kept) || len(next) == 0 {
			break
		}
		kept = next
		mean, std = meanStd(kept)
	}

	return mean, std
}

// ClippedGrid flattens a rectangular 2D grid and applies Clipped to it.
// Rows of differing length are tolerated here; the caller owns
// rectangularity invariants.
//
// Time complexity: O(maxIter·W·H). Memory: O(W·H).
func ClippedGrid(grid [][]float64, sigma float64, maxIter int) (mean, std float64) {
	n := 0
	for _, row := range grid {
		n += len(row)
	}
	flat := make([]float64, 0, n)
	for _, row := range grid {
		flat = append(flat, row...)
	}

	return Clipped(flat, sigma, maxIter)
}

// meanStd wraps stat.MeanStdDev, mapping the NaN of a one-sample
// population to a zero spread.
func meanStd(values []float64) (mean, std float64) {
	mean, std = stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}

	return mean, std
}
