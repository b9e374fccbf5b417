package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"runtime"
	"time"

	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/tracer"
)

type Renderer interface {
	// Render frame and present it to the supplied sink.
	Render(sink scene.PixelSink) error

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats

	// Get the camera used for generating frames.
	Camera() *scene.Camera

	// Get the row block assignments of the last rendered frame.
	BlockAssignments() []uint32
}

// The default renderer splits each frame into row blocks and renders them
// in parallel using a pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	sc        *scene.Scene
	camera    *scene.Camera
	scheduler tracer.BlockScheduler
	options   Options

	tracers          []tracer.Tracer
	blockAssignments []uint32

	// The frame buffer is shared by all tracers. Each tracer only writes
	// the rows of its assigned block.
	frameBuffer *image.RGBA

	// Source for block seeds.
	rng *rand.Rand

	stats FrameStats
}

// Create a new default renderer using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if len(sc.Objects) == 0 {
		return nil, ErrEmptyScene
	}

	camera, err := scene.NewCamera(int(opts.FrameW), opts.AspectRatio, int(opts.SamplesPerPixel))
	if err != nil {
		return nil, err
	}

	if opts.Shader == nil {
		opts.Shader = scene.NormalShader{}
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.NumCPU()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	r := &defaultRenderer{
		logger:      log.New("renderer"),
		sc:          sc,
		camera:      camera,
		scheduler:   scheduler,
		options:     opts,
		frameBuffer: image.NewRGBA(image.Rect(0, 0, camera.ImageWidth(), camera.ImageHeight())),
		rng:         rand.New(rand.NewSource(opts.Seed)),
	}

	for index := 0; index < opts.NumWorkers; index++ {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", index))
		if err = tr.Setup(sc, camera, opts.Shader, r.frameBuffer); err != nil {
			tr.Close()
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	r.logger.Infof("rendering %dx%d frames with %d samples per pixel using %d tracers", camera.ImageWidth(), camera.ImageHeight(), camera.SamplesPerPixel(), len(r.tracers))
	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get last frame stats.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) Camera() *scene.Camera {
	return r.camera
}

func (r *defaultRenderer) BlockAssignments() []uint32 {
	return r.blockAssignments
}

// Render next frame. Once all tracers complete their blocks the frame buffer
// contents are presented to sink in row-major order from the calling
// go-routine. A nil sink skips presentation.
func (r *defaultRenderer) Render(sink scene.PixelSink) error {
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	start := time.Now()
	if err := r.renderFrame(); err != nil {
		return err
	}

	if sink != nil {
		for y := 0; y < r.camera.ImageHeight(); y++ {
			for x := 0; x < r.camera.ImageWidth(); x++ {
				sink.Present(x, y, r.frameBuffer.RGBAAt(x, y))
			}
		}
	}

	r.stats.RenderTime = time.Since(start)
	r.logger.Debugf("rendered frame in %s", r.stats.RenderTime)
	return nil
}

// Schedule row blocks, wait for all tracers and collect their stats.
func (r *defaultRenderer) renderFrame() error {
	frameH := uint32(r.camera.ImageHeight())
	r.blockAssignments = r.scheduler.Schedule(r.tracers, frameH)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))

	var blockY uint32
	pending := 0
	for index, tr := range r.tracers {
		blockH := r.blockAssignments[index]
		if blockH == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockH,
			Seed:     r.rng.Int63(),
			DoneChan: doneChan,
			ErrChan:  errChan,
		})
		blockY += blockH
		pending++
	}

	var firstErr error
	for ; pending > 0; pending-- {
		select {
		case <-doneChan:
		case err := <-errChan:
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return fmt.Errorf("renderer: could not render frame: %w", firstErr)
	}

	r.stats.Tracers = make([]TracerStat, len(r.tracers))
	for index, tr := range r.tracers {
		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       r.blockAssignments[index],
			FramePercent: 100.0 * float32(r.blockAssignments[index]) / float32(frameH),
		}
		if stat.BlockH != 0 {
			stat.RenderTime = tr.Stats().BlockTime
		}
		r.stats.Tracers[index] = stat
	}

	return nil
}
