package scene

import (
	"github.com/achilleasa/lumen/types"
	"github.com/chewxy/math32"
)

// Minimum hit distance for secondary rays. It prevents scattered rays from
// re-hitting the surface they originate from.
const scatterEpsilon float32 = 0.001

// A Shader computes the linear color carried by a ray.
type Shader interface {
	Shade(sc *Scene, r types.Ray, rng types.Rand) types.Vec3
}

// NormalShader colors hits by their surface normal and misses by the sky
// gradient.
type NormalShader struct{}

func (NormalShader) Shade(sc *Scene, r types.Ray, _ types.Rand) types.Vec3 {
	if hit, ok := sc.HitScan(r, primaryRange()); ok {
		return types.NormalToColor(hit.Normal)
	}
	return r.SkyColor()
}

// PathShader follows rays as they scatter off scene materials up to
// MaxDepth bounces. The sky is the only light source.
type PathShader struct {
	MaxDepth int
}

func (s PathShader) Shade(sc *Scene, r types.Ray, rng types.Rand) types.Vec3 {
	return s.shade(sc, r, rng, s.MaxDepth)
}

func (s PathShader) shade(sc *Scene, r types.Ray, rng types.Rand, depth int) types.Vec3 {
	if depth <= 0 {
		return types.Vec3{}
	}

	hit, ok := sc.HitScan(r, types.NewInterval(scatterEpsilon, math32.Inf(1)))
	if !ok {
		return r.SkyColor()
	}

	mat := sc.Material(hit.Material)
	if mat == nil {
		return types.Vec3{}
	}

	scatter, ok := mat.Scatter(r, hit, rng)
	if !ok {
		return types.Vec3{}
	}

	return scatter.Attenuation.MulVec(s.shade(sc, scatter.Ray, rng, depth-1))
}
