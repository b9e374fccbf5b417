package scene

import (
	"errors"
	"fmt"

	"github.com/achilleasa/lumen/types"
)

var (
	ErrInvalidFuzz = errors.New("material: metal fuzz must be in [0, 1]")
)

// The result of scattering a ray off a surface.
type Scatter struct {
	// The outgoing ray.
	Ray types.Ray

	// The amount of light retained by the bounce.
	Attenuation types.Vec3
}

// The Material interface is implemented by all surface models.
type Material interface {
	// Scatter the incoming ray at hit. It returns false if the ray was
	// absorbed.
	Scatter(r types.Ray, hit Hit, rng types.Rand) (Scatter, bool)
}

// A Lambertian material scatters light diffusely.
type Lambertian struct {
	Albedo types.Vec3
}

// Create a new lambertian material.
func NewLambertian(albedo types.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements Material.
func (m *Lambertian) Scatter(_ types.Ray, hit Hit, rng types.Rand) (Scatter, bool) {
	dir := hit.Normal.Add(types.RandomUnitVector(rng))

	// The random vector may (almost) cancel out the normal
	if dir.NearZero() {
		dir = hit.Normal
	}

	return Scatter{
		Ray:         types.NewRay(hit.Point, dir),
		Attenuation: m.Albedo,
	}, true
}

// A Metal material reflects light specularly. The fuzz parameter perturbs
// the reflected direction; 0 gives a perfect mirror.
type Metal struct {
	Albedo types.Vec3
	Fuzz   float32
}

// Create a new metal material. The fuzz factor must be in [0, 1].
func NewMetal(albedo types.Vec3, fuzz float32) (*Metal, error) {
	if !types.NewInterval[float32](0, 1).Contains(fuzz, true) {
		return nil, fmt.Errorf("%w; got %f", ErrInvalidFuzz, fuzz)
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}, nil
}

// Create a new metal material and panic if the fuzz factor is invalid.
func MustNewMetal(albedo types.Vec3, fuzz float32) *Metal {
	m, err := NewMetal(albedo, fuzz)
	if err != nil {
		panic(err)
	}
	return m
}

// Scatter implements Material.
func (m *Metal) Scatter(r types.Ray, hit Hit, rng types.Rand) (Scatter, bool) {
	dir := r.Dir.Reflect(hit.Normal).Normalize()
	if m.Fuzz > 0 {
		dir = dir.Add(types.RandomUnitVector(rng).Mul(m.Fuzz))
	}

	// Fuzzed reflections pointing into the surface are absorbed
	if dir.Dot(hit.Normal) <= 0 {
		return Scatter{}, false
	}

	return Scatter{
		Ray:         types.NewRay(hit.Point, dir),
		Attenuation: m.Albedo,
	}, true
}
