package renderer

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// A FrameSink collects presented pixels into an image that can be exported
// as a PNG file.
type FrameSink struct {
	dc *gg.Context
}

// Create a frame sink for an image with the given dimensions.
func NewFrameSink(width, height int) *FrameSink {
	return &FrameSink{
		dc: gg.NewContext(width, height),
	}
}

// Present implements scene.PixelSink.
func (s *FrameSink) Present(x, y int, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.SetPixel(x, y)
}

// Get the collected image.
func (s *FrameSink) Image() image.Image {
	return s.dc.Image()
}

// Encode the collected image as PNG and write it to path.
func (s *FrameSink) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
