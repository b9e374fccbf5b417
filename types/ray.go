package types

var (
	skyHorizonColor = Vec3{1.0, 1.0, 1.0}
	skyZenithColor  = Vec3{0.5, 0.7, 1.0}
)

// A Ray is defined by an origin and a (not necessarily normalized) direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Create a new ray.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Evaluate the ray at distance t. Eval(0) is always the ray origin.
func (r Ray) Eval(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Get the sky color seen along the ray. The normalized direction's Y
// component is mapped from [-1, 1] to [0, 1] and used to blend between white
// and sky blue.
func (r Ray) SkyColor() Vec3 {
	dir := r.Dir.Normalize()
	a := (dir[1] + 1) * 0.5
	return skyHorizonColor.Lerp(skyZenithColor, a)
}
