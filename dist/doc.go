// Package dist draws the random grids and parameters behind noise
// injection: full-frame Gaussian and left-truncated Gaussian samples,
// and marginal sampling of observation-derived parameter arrays.
//
// ✨ Key features:
//   - Gaussian grids of any (tchans × fchans) shape
//   - left-truncated Gaussian via inverse-CDF transform (no rejection loop)
//   - marginal sampling from caller-supplied parameter arrays
//   - explicit *rand.Rand injection: the caller owns seeding
//
// ⚙️ Usage:
//
//	import (
//	  "golang.org/x/exp/rand"
//
//	  "github.com/katalvlaran/spectrogen/dist"
//	)
//
//	rng := rand.New(rand.NewSource(42))
//	noise := dist.TruncatedGaussian(rng, 5, 2, 0, 32, 1024)
//
// All draws are deterministic given the source's seed. A zero (or
// negative) standard deviation degenerates to the constant mean plane.
package dist
