package types

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Quantization scale; values slightly above 255 absorb rounding error for
// channels that are exactly 1.0.
const quantizeScale float32 = 255.999

var channelRange = NewInterval[float32](0, 255)

// Convert a linear color component to gamma space (gamma 2).
func LinearToGamma(c float32) float32 {
	if c > 0 {
		return math32.Sqrt(c)
	}
	return 0
}

// Convert a linear color to a gamma corrected 8-bit RGBA color.
func ToRGBA(c Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(LinearToGamma(c[0])),
		G: quantize(LinearToGamma(c[1])),
		B: quantize(LinearToGamma(c[2])),
		A: 0xFF,
	}
}

func quantize(c float32) uint8 {
	return uint8(channelRange.Clamp(c * quantizeScale))
}

// Map a unit surface normal to a color.
func NormalToColor(n Vec3) Vec3 {
	return n.Add(Splat(1)).Mul(0.5)
}
