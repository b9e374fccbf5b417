package tracer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/scene"
)

// A tracer that renders blocks on the CPU using a dedicated go-routine.
type CPUTracer struct {
	logger log.Logger

	// Guards the worker lifecycle.
	sync.Mutex
	wg sync.WaitGroup

	// Guards the attached scene state.
	setupMu sync.RWMutex

	// The tracer id.
	id string

	// A channel for receiving block requests from the renderer.
	blockReqChan chan BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *Stats

	sc          *scene.Scene
	camera      *scene.Camera
	shader      scene.Shader
	frameBuffer *image.RGBA
}

// Create a new cpu tracer and start its worker.
func NewCPUTracer(id string) *CPUTracer {
	tr := &CPUTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		blockReqChan: make(chan BlockRequest, 1),
		stats:        &Stats{},
	}
	tr.startWorker()

	return tr
}

// Get tracer id.
func (tr *CPUTracer) Id() string {
	return tr.id
}

// Each cpu tracer runs on a single core.
func (tr *CPUTracer) SpeedEstimate() float32 {
	return 1.0
}

// Attach the scene and output buffer for the following block requests.
func (tr *CPUTracer) Setup(sc *scene.Scene, camera *scene.Camera, shader scene.Shader, frameBuffer *image.RGBA) error {
	if sc == nil || camera == nil || shader == nil || frameBuffer == nil {
		return ErrNotSetup
	}

	bounds := frameBuffer.Bounds()
	if bounds.Dx() != camera.ImageWidth() || bounds.Dy() != camera.ImageHeight() || bounds.Min != (image.Point{}) {
		return fmt.Errorf("%w; expected %dx%d; got %v", ErrFrameBufferSize, camera.ImageWidth(), camera.ImageHeight(), bounds)
	}

	tr.setupMu.Lock()
	defer tr.setupMu.Unlock()

	tr.sc = sc
	tr.camera = camera
	tr.shader = shader
	tr.frameBuffer = frameBuffer
	return nil
}

// Shutdown the tracer worker. Requests still queued when the worker exits
// fail with ErrTracerClosed.
func (tr *CPUTracer) Close() {
	tr.Lock()
	closeChan := tr.closeChan
	tr.closeChan = nil
	tr.Unlock()

	if closeChan == nil {
		return
	}

	close(closeChan)
	tr.wg.Wait()
}

// Enqueue block request. Requests sent to a closed tracer fail with
// ErrTracerClosed.
func (tr *CPUTracer) Enqueue(blockReq BlockRequest) {
	tr.Lock()
	defer tr.Unlock()

	// The worker never acquires tr.Mutex so the send below cannot block
	// forever.
	if tr.closeChan == nil {
		blockReq.ErrChan <- ErrTracerClosed
		return
	}
	tr.blockReqChan <- blockReq
}

// Retrieve last frame statistics.
func (tr *CPUTracer) Stats() *Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *CPUTracer) startWorker() {
	tr.closeChan = make(chan struct{})
	closeChan := tr.closeChan

	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		for {
			select {
			case blockReq := <-tr.blockReqChan:
				startTime := time.Now()
				if err := tr.renderBlock(&blockReq); err != nil {
					tr.logger.Errorf("could not render block [%d, %d): %v", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, err)
					blockReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.BlockTime = time.Since(startTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-closeChan:
				tr.drainQueue()
				return
			}
		}
	}()
}

// Reject any requests left in the queue.
func (tr *CPUTracer) drainQueue() {
	for {
		select {
		case blockReq := <-tr.blockReqChan:
			blockReq.ErrChan <- ErrTracerClosed
		default:
			return
		}
	}
}

// Render the rows of a block into the frame buffer.
func (tr *CPUTracer) renderBlock(blockReq *BlockRequest) error {
	tr.setupMu.RLock()
	sc, camera, shader, frameBuffer := tr.sc, tr.camera, tr.shader, tr.frameBuffer
	tr.setupMu.RUnlock()

	if sc == nil {
		return ErrNotSetup
	}

	y0 := int(blockReq.BlockY)
	y1 := y0 + int(blockReq.BlockH)
	if y1 > camera.ImageHeight() {
		return fmt.Errorf("%w; block [%d, %d), frame height %d", ErrBlockOutOfBounds, y0, y1, camera.ImageHeight())
	}

	tr.logger.Debugf("rendering rows [%d, %d)", y0, y1)

	rng := rand.New(rand.NewSource(blockReq.Seed))
	sink := scene.PixelSinkFunc(func(x, y int, c color.RGBA) {
		frameBuffer.SetRGBA(x, y, c)
	})
	camera.RenderRows(sc, shader, y0, y1, sink, rng)

	return nil
}
