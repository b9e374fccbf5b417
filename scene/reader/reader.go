package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/lumen/asset"
	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
)

var (
	ErrUnknownMaterialType = errors.New("reader: unknown material type")
	ErrUnknownMaterialRef  = errors.New("reader: sphere references unknown material")
)

var logger = log.New("scene reader")

type materialDef struct {
	ID     string     `json:"id"`
	Type   string     `json:"type"`
	Albedo types.Vec3 `json:"albedo"`
	Fuzz   float32    `json:"fuzz"`
}

type sphereDef struct {
	Center   types.Vec3 `json:"center"`
	Radius   float32    `json:"radius"`
	Material string     `json:"material"`
}

type sceneDef struct {
	Name      string        `json:"name"`
	Materials []materialDef `json:"materials"`
	Spheres   []sphereDef   `json:"spheres"`
}

// Read a JSON scene description from a local path or an http(s) URL.
func ReadScene(ctx context.Context, location string) (*scene.Scene, error) {
	res, err := asset.NewResource(ctx, location)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	logger.Infof("parsing scene from %s", res.Path())
	start := time.Now()

	sc, err := Decode(res, res.Name())
	if err != nil {
		return nil, fmt.Errorf("reader: could not parse %s: %w", res.Path(), err)
	}

	logger.Infof("parsed scene %q in %d ms (materials: %d, spheres: %d)", sc.Name, time.Since(start).Nanoseconds()/1e6, len(sc.Materials), len(sc.Objects))
	return sc, nil
}

// Decode a JSON scene description. If the description does not specify a
// name, defaultName is used instead.
func Decode(r io.Reader, defaultName string) (*scene.Scene, error) {
	var def sceneDef
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}

	if def.Name == "" {
		def.Name = defaultName
	}
	sc := scene.NewScene(def.Name)

	matIDs := make(map[string]scene.MaterialID, len(def.Materials))
	for index, md := range def.Materials {
		mat, err := md.build()
		if err != nil {
			return nil, fmt.Errorf("material %d (%q): %w", index, md.ID, err)
		}

		id, err := sc.AddMaterial(md.ID, mat)
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", index, err)
		}
		matIDs[md.ID] = id
	}

	for index, sd := range def.Spheres {
		id, ok := matIDs[sd.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w %q", index, ErrUnknownMaterialRef, sd.Material)
		}
		if err := sc.AddSphere(scene.NewSphere(sd.Center, sd.Radius, id)); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", index, err)
		}
	}

	return sc, nil
}

func (md materialDef) build() (scene.Material, error) {
	switch md.Type {
	case "lambertian":
		return scene.NewLambertian(md.Albedo), nil
	case "metal":
		m, err := scene.NewMetal(md.Albedo, md.Fuzz)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMaterialType, md.Type)
	}
}
