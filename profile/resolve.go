package profile

// Resolve evaluates the profile against a coordinate axis and returns
// one intensity (or frequency, for paths) value per axis sample.
//
// Algorithm outline:
//  1. Constant profiles broadcast their level over len(axis).
//  2. Fixed profiles are returned as a copy after an exact-length check
//     (ErrShapeMismatch on mismatch). Integration flags are ignored: a
//     pre-computed array already carries one value per sample.
//  3. Func profiles evaluate at each axis point directly, or, when
//     integrate is set, at subsamples uniformly spaced sub-points
//     covering each sample's [axis[i], axis[i]+step) interval, averaged
//     per sample (left Riemann approximation of the interval mean).
//
// step is the axis spacing (dt for time axes, df for frequency axes) and
// is only consulted when integrating. subsamples < 1 while integrating
// reports ErrBadSubsamples.
//
// Time complexity: O(N) direct, O(N·subsamples) integrated.
func (p Profile) Resolve(axis []float64, step float64, integrate bool, subsamples int) ([]float64, error) {
	out := make([]float64, len(axis))

	switch p.kind {
	case kindConst:
		for i := range out {
			out[i] = p.level
		}
	case kindFixed:
		if len(p.arr) != len(axis) {
			return nil, ErrShapeMismatch
		}
		copy(out, p.arr)
	case kindFunc:
		if !integrate {
			for i, x := range axis {
				out[i] = p.fn(x)
			}

			break
		}
		if subsamples < 1 {
			return nil, ErrBadSubsamples
		}
		sub := step / float64(subsamples)
		for i, x := range axis {
			total := 0.0
			for j := 0; j < subsamples; j++ {
				total += p.fn(x + float64(j)*sub)
			}
			out[i] = total / float64(subsamples)
		}
	}

	return out, nil
}
