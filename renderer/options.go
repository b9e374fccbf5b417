package renderer

import "github.com/achilleasa/lumen/scene"

type Options struct {
	// Frame width and aspect ratio (width / height). The frame height is
	// derived from these values.
	FrameW      uint32
	AspectRatio float32

	// Number of samples.
	SamplesPerPixel uint32

	// The number of cpu tracers to spawn. If set to 0, one tracer per
	// available cpu will be used.
	NumWorkers int

	// The shader for computing sample colors. Defaults to scene.NormalShader.
	Shader scene.Shader

	// Seed for the per-block random sources. If set to 0 a time-based seed
	// will be used.
	Seed int64
}
