package scene

import (
	"github.com/achilleasa/lumen/types"
	"github.com/chewxy/math32"
)

// A sphere primitive.
type Sphere struct {
	Center   types.Vec3
	Radius   float32
	Material MaterialID
}

// Create new sphere. Negative radii are clamped to zero.
func NewSphere(center types.Vec3, radius float32, mat MaterialID) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math32.Max(radius, 0),
		Material: mat,
	}
}

// Intersect the sphere with a ray.
//
// With oc = C - O the intersection distances are the roots of
// a*t^2 - 2*h*t + c = 0 where a = |D|^2, h = D.oc and c = |oc|^2 - r^2. The
// near root is tried first.
func (s *Sphere) Hits(r types.Ray, tRange types.Interval[float32]) (Hit, bool) {
	if s.Radius == 0 {
		return Hit{}, false
	}

	oc := s.Center.Sub(r.Origin)
	a := r.Dir.LenSq()
	h := r.Dir.Dot(oc)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sqrtD := math32.Sqrt(discriminant)
	t := (h - sqrtD) / a
	if !tRange.Contains(t, false) {
		t = (h + sqrtD) / a
		if !tRange.Contains(t, false) {
			return Hit{}, false
		}
	}

	point := r.Eval(t)

	// Dividing by the radius yields a unit vector without the rounding
	// error of an extra normalization.
	outwardNormal := point.Sub(s.Center).Div(s.Radius)
	return NewHit(r, t, point, outwardNormal, s.Material), true
}
