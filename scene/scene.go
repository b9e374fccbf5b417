package scene

import (
	"errors"
	"fmt"

	"github.com/achilleasa/lumen/types"
	"github.com/chewxy/math32"
)

var (
	ErrDuplicateMaterial = errors.New("scene: material already added")
	ErrUnknownMaterial   = errors.New("scene: object references unknown material; ensure that the material is added to the scene before adding the object")
	ErrNoMaterial        = errors.New("scene: no material assigned")
)

// A handle to a material stored in a scene's material table.
type MaterialID int

type Scene struct {
	Name string

	Materials     []Material
	MaterialNames []string
	Objects       []Hittable
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:          name,
		Materials:     make([]Material, 0),
		MaterialNames: make([]string, 0),
		Objects:       make([]Hittable, 0),
	}
}

// Add a named material to the scene and return a handle that objects can
// use to reference it.
func (s *Scene) AddMaterial(name string, material Material) (MaterialID, error) {
	if material == nil {
		return -1, ErrNoMaterial
	}
	for _, matName := range s.MaterialNames {
		if matName == name {
			return -1, fmt.Errorf("%w: %q", ErrDuplicateMaterial, name)
		}
	}
	s.Materials = append(s.Materials, material)
	s.MaterialNames = append(s.MaterialNames, name)
	return MaterialID(len(s.Materials) - 1), nil
}

// Add a sphere to the scene. The sphere's material must already be part of
// the material table.
func (s *Scene) AddSphere(sphere *Sphere) error {
	if sphere.Material < 0 || int(sphere.Material) >= len(s.Materials) {
		return fmt.Errorf("%w (id: %d)", ErrUnknownMaterial, sphere.Material)
	}
	s.Objects = append(s.Objects, sphere)
	return nil
}

// Lookup a material by its handle. It returns nil if the handle is not valid.
func (s *Scene) Material(id MaterialID) Material {
	if id < 0 || int(id) >= len(s.Materials) {
		return nil
	}
	return s.Materials[id]
}

// Lookup the name of a material by its handle.
func (s *Scene) MaterialName(id MaterialID) string {
	if id < 0 || int(id) >= len(s.MaterialNames) {
		return ""
	}
	return s.MaterialNames[id]
}

// Find the closest object hit by r within tRange.
func (s *Scene) HitScan(r types.Ray, tRange types.Interval[float32]) (Hit, bool) {
	return HitScan(r, tRange, s.Objects)
}

// Build the default scene: a unit diameter sphere in front of the camera
// resting on a large ground sphere.
func NewDefaultScene() *Scene {
	sc := NewScene("default")

	mat, _ := sc.AddMaterial("default", NewLambertian(types.Splat(0.5)))
	_ = sc.AddSphere(NewSphere(types.XYZ(0, 0, -1), 0.5, mat))
	_ = sc.AddSphere(NewSphere(types.XYZ(0, -101, -1), 100, mat))

	return sc
}

// The distance range used for primary rays.
func primaryRange() types.Interval[float32] {
	return types.NewInterval(0, math32.Inf(1))
}
