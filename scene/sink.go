package scene

import "image/color"

// A PixelSink receives the final color of each rendered pixel.
type PixelSink interface {
	Present(x, y int, c color.RGBA)
}

// PixelSinkFunc adapts an ordinary function to the PixelSink interface.
type PixelSinkFunc func(x, y int, c color.RGBA)

// Present calls f(x, y, c).
func (f PixelSinkFunc) Present(x, y int, c color.RGBA) {
	f(x, y, c)
}
