package profile

import "math"

// fwhmToSigma converts a full-width-at-half-maximum to a Gaussian sigma.
const fwhmToSigma = 2.3548200450309493 // 2*sqrt(2*ln 2)

// Spectral shape names accepted by ShapeByName.
const (
	ShapeBox        = "box"
	ShapeGaussian   = "gaussian"
	ShapeLorentzian = "lorentzian"
	ShapeVoigt      = "voigt"
)

// BoxShape returns a top-hat spectral shape: intensity 1 within
// width/2 of the signal center, 0 outside.
func BoxShape(width float64) Shape {
	half := width / 2
	return func(f, center float64) float64 {
		if math.Abs(f-center) <= half {
			return 1
		}

		return 0
	}
}

// GaussianShape returns a Gaussian spectral shape with the given
// full width at half maximum, peak-normalized to 1 at f == center.
func GaussianShape(width float64) Shape {
	sigma := width / fwhmToSigma
	return func(f, center float64) float64 {
		d := f - center
		return math.Exp(-d * d / (2 * sigma * sigma))
	}
}

// LorentzianShape returns a Lorentzian spectral shape with the given
// full width at half maximum, peak-normalized to 1 at f == center.
func LorentzianShape(width float64) Shape {
	gamma := width / 2
	return func(f, center float64) float64 {
		d := f - center
		return gamma * gamma / (d*d + gamma*gamma)
	}
}

// VoigtShape returns a pseudo-Voigt spectral shape: the equal-weight
// blend of the Gaussian and Lorentzian shapes of the same full width at
// half maximum, peak-normalized to 1 at f == center. The blend stands in
// for the exact Gaussian⊛Lorentzian convolution, which has no
// closed form.
func VoigtShape(width float64) Shape {
	g := GaussianShape(width)
	l := LorentzianShape(width)
	return func(f, center float64) float64 {
		return 0.5*g(f, center) + 0.5*l(f, center)
	}
}

// ShapeByName selects a spectral shape from the fixed set
// {box, gaussian, lorentzian, voigt} by name, all parameterized by full
// width at half maximum. Unknown names report ErrUnsupportedProfile.
func ShapeByName(name string, width float64) (Shape, error) {
	switch name {
	case ShapeBox:
		return BoxShape(width), nil
	case ShapeGaussian:
		return GaussianShape(width), nil
	case ShapeLorentzian:
		return LorentzianShape(width), nil
	case ShapeVoigt:
		return VoigtShape(width), nil
	default:
		return nil, ErrUnsupportedProfile
	}
}
