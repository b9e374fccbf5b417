package types

import "github.com/chewxy/math32"

// Rand is the source of uniform random numbers used for sampling. It is
// implemented by *rand.Rand.
type Rand interface {
	// Return a value in [0, 1).
	Float32() float32
}

// Sample a random vector on the unit sphere.
//
// Points are drawn from the [-1, 1] cube and rejected unless they fall inside
// the unit sphere. Points whose squared length underflows are also rejected so
// that the normalization below never divides by (almost) zero.
func RandomUnitVector(rng Rand) Vec3 {
	for {
		p := Vec3{
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
		}
		lenSq := p.LenSq()
		if 1e-20 < lenSq && lenSq <= 1 {
			return p.Div(math32.Sqrt(lenSq))
		}
	}
}

// Sample an offset in the [-0.5, 0.5) square on the XY plane.
func SampleSquare(rng Rand) Vec3 {
	return Vec3{rng.Float32() - 0.5, rng.Float32() - 0.5, 0}
}
