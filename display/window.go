// Package display presents rendered frames in an OpenGL window.
//
// All functions in this package must be invoked from the main thread.
package display

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/types"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// A Window is a pixel sink that displays the presented pixels once per
// frame. Pressing Escape closes the window and Tab toggles an overlay with
// the row blocks assigned to each tracer.
type Window struct {
	logger log.Logger

	// opengl handles
	window  *glfw.Window
	texture uint32
	texFbo  uint32

	width  int32
	height int32

	// Pixels presented for the current frame.
	frame *image.RGBA

	// Overlay state
	showBlocks  bool
	blocks      []uint32
	blockColors []types.Vec3
}

// Create a new non-resizable window with a GL 2.1 context.
func NewWindow(width, height int, title string) (*Window, error) {
	var err error
	if err = glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	w := &Window{
		logger: log.New("display"),
		width:  int32(width),
		height: int32(height),
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	w.window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: could not create opengl window: %w", err)
	}
	w.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		w.Close()
		return nil, fmt.Errorf("display: could not init opengl: %w", err)
	}

	// Setup texture for image data
	gl.GenTextures(1, &w.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w.width, w.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Attach texture to FBO
	gl.GenFramebuffers(1, &w.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.texture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	// Setup ortho projection with the origin at the top-left corner for
	// the overlay
	gl.Disable(gl.DEPTH_TEST)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, -1, 1)
	gl.Viewport(0, 0, w.width, w.height)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	w.window.SetKeyCallback(w.onKeyEvent)

	w.logger.Infof("created %dx%d window", width, height)
	return w, nil
}

// Present implements scene.PixelSink.
func (w *Window) Present(x, y int, c color.RGBA) {
	w.frame.SetRGBA(x, y, c)
}

// Update the block assignments displayed by the overlay.
func (w *Window) SetBlockAssignments(blocks []uint32) {
	w.blocks = append(w.blocks[:0], blocks...)
	for len(w.blockColors) < len(w.blocks) {
		w.blockColors = append(w.blockColors, types.XYZ(rand.Float32(), rand.Float32(), 1.0))
	}
}

// Invoke renderFn for each frame and display its output until the window
// is closed or renderFn returns an error. renderFn is expected to present
// a full frame to the window before returning.
func (w *Window) Run(renderFn func(w *Window) error) error {
	for !w.window.ShouldClose() {
		glfw.PollEvents()

		if err := renderFn(w); err != nil {
			return err
		}

		w.blit()
		if w.showBlocks {
			w.renderBlocks()
		}

		w.window.SwapBuffers()
	}
	return nil
}

// Destroy the window and release glfw resources.
func (w *Window) Close() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}

// Upload the frame to the texture and copy it to the window framebuffer.
// Texture rows are stored bottom-up so the copy flips the Y axis.
func (w *Window) blit() {
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w.width, w.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.frame.Pix))

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
	gl.BlitFramebuffer(0, 0, w.width, w.height, 0, w.height, w.width, 0, gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

// Outline the row block rendered by each tracer.
func (w *Window) renderBlocks() {
	var y int32 = 1
	frameW := w.width - 1
	gl.LineWidth(2.0)
	for index, blockH := range w.blocks {
		if blockH == 0 {
			continue
		}
		gl.Color3fv(&w.blockColors[index][0])
		gl.Begin(gl.LINE_LOOP)
		gl.Vertex2i(0, y)
		gl.Vertex2i(frameW, y)
		gl.Vertex2i(frameW, y+int32(blockH))
		gl.Vertex2i(0, y+int32(blockH))
		gl.End()

		y += int32(blockH)
	}
}

func (w *Window) onKeyEvent(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.window.SetShouldClose(true)
	case glfw.KeyTab:
		w.showBlocks = !w.showBlocks
	}
}
