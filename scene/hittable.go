package scene

import "github.com/achilleasa/lumen/types"

// A Hit describes where and how a ray intersected a scene object.
type Hit struct {
	// The ray distance to the intersection point.
	T float32

	// The intersection point. Satisfies Point == ray.Eval(T).
	Point types.Vec3

	// The unit surface normal at Point. It always points against the
	// incoming ray.
	Normal types.Vec3

	// True if the ray struck the outward facing side of the surface.
	FrontFace bool

	// Handle to the material of the object that was hit. It indexes the
	// material table of the scene that produced this hit.
	Material MaterialID
}

// Create a new hit record. The outward normal is flipped if required so
// that the stored normal opposes the ray direction.
func NewHit(r types.Ray, t float32, point, outwardNormal types.Vec3, mat MaterialID) Hit {
	h := Hit{
		T:        t,
		Point:    point,
		Material: mat,
	}
	h.setFaceNormal(r, outwardNormal)
	return h
}

func (h *Hit) setFaceNormal(r types.Ray, outwardNormal types.Vec3) {
	h.FrontFace = r.Dir.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Mul(-1)
	}
}

// The Hittable interface is implemented by all objects that can be
// intersected by a ray.
type Hittable interface {
	// Test the ray against the object. Implementations must only report
	// hits whose distance lies strictly within tRange and must return the
	// closest such hit.
	Hits(r types.Ray, tRange types.Interval[float32]) (Hit, bool)
}

// Find the closest hit among objects.
//
// After each hit the upper bound of the search range is lowered to the hit
// distance so subsequent objects only match if they are strictly closer.
func HitScan(r types.Ray, tRange types.Interval[float32], objects []Hittable) (Hit, bool) {
	var (
		best   Hit
		hitAny bool
		low    = tRange.Low()
	)

	for _, obj := range objects {
		if hit, ok := obj.Hits(r, tRange); ok {
			tRange = types.NewInterval(low, hit.T)
			best = hit
			hitAny = true
		}
	}

	return best, hitAny
}
