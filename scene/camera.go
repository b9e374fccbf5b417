package scene

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/achilleasa/lumen/types"
)

var (
	ErrInvalidCamera = errors.New("camera: image width, aspect ratio and samples per pixel must be positive")
)

const (
	viewportHeight float32 = 2.0
	focalLength    float32 = 1.0
)

// A fixed pinhole camera located at the origin and looking down the -Z axis.
type Camera struct {
	imageWidth  int
	imageHeight int
	samples     int
	sampleScale float32

	center      types.Vec3
	pixel00     types.Vec3
	pixelDeltaU types.Vec3
	pixelDeltaV types.Vec3
}

// Create a camera for an image of the given width and aspect ratio
// (width / height) that averages samples jittered rays per pixel.
func NewCamera(imageWidth int, aspectRatio float32, samples int) (*Camera, error) {
	if imageWidth <= 0 || !(aspectRatio > 0) || samples <= 0 {
		return nil, fmt.Errorf("%w; got width %d, aspect %f, samples %d", ErrInvalidCamera, imageWidth, aspectRatio, samples)
	}

	imageHeight := max(1, int(float32(imageWidth)/aspectRatio))

	// Use the real image ratio for the viewport; the height is rounded
	viewportWidth := viewportHeight * float32(imageWidth) / float32(imageHeight)

	center := types.Vec3{}
	viewportU := types.XYZ(viewportWidth, 0, 0)
	viewportV := types.XYZ(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Div(float32(imageWidth))
	pixelDeltaV := viewportV.Div(float32(imageHeight))

	upperLeft := center.
		Sub(types.XYZ(0, 0, focalLength)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))

	return &Camera{
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
		samples:     samples,
		sampleScale: 1.0 / float32(samples),
		center:      center,
		pixel00:     upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5)),
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
	}, nil
}

func (c *Camera) ImageWidth() int {
	return c.imageWidth
}

func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

func (c *Camera) SamplesPerPixel() int {
	return c.samples
}

// Generate a ray through a random point inside pixel (x, y).
func (c *Camera) Ray(x, y int, rng types.Rand) types.Ray {
	offset := types.SampleSquare(rng)
	sample := c.pixel00.
		Add(c.pixelDeltaU.Mul(float32(x) + offset[0])).
		Add(c.pixelDeltaV.Mul(float32(y) + offset[1]))

	return types.NewRay(c.center, sample.Sub(c.center))
}

// Shade all samples of pixel (x, y) and return the averaged, gamma
// corrected pixel color.
func (c *Camera) SamplePixel(sc *Scene, shader Shader, x, y int, rng types.Rand) color.RGBA {
	var accum types.Vec3
	for s := 0; s < c.samples; s++ {
		accum = accum.Add(shader.Shade(sc, c.Ray(x, y, rng), rng))
	}
	return types.ToRGBA(accum.Mul(c.sampleScale))
}

// Render the full image and present each pixel to sink in row-major order.
func (c *Camera) Render(sc *Scene, shader Shader, sink PixelSink, rng types.Rand) {
	c.RenderRows(sc, shader, 0, c.imageHeight, sink, rng)
}

// Render rows [y0, y1) of the image. Rows outside the image are skipped.
func (c *Camera) RenderRows(sc *Scene, shader Shader, y0, y1 int, sink PixelSink, rng types.Rand) {
	y0 = max(y0, 0)
	y1 = min(y1, c.imageHeight)
	for y := y0; y < y1; y++ {
		for x := 0; x < c.imageWidth; x++ {
			sink.Present(x, y, c.SamplePixel(sc, shader, x, y, rng))
		}
	}
}
