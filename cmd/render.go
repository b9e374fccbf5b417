package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/achilleasa/lumen/display"
	"github.com/achilleasa/lumen/renderer"
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/scene/reader"
	"github.com/achilleasa/lumen/tracer"
	"github.com/urfave/cli"
)

// Render a still frame and save it as a PNG image.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	camera := r.Camera()
	sink := renderer.NewFrameSink(camera.ImageWidth(), camera.ImageHeight())

	logger.Noticef("rendering %dx%d frame with %d samples per pixel", camera.ImageWidth(), camera.ImageHeight(), camera.SamplesPerPixel())
	if err = r.Render(sink); err != nil {
		return err
	}

	imgFile := ctx.String("out")
	start := time.Now()
	if err = sink.SavePNG(imgFile); err != nil {
		return fmt.Errorf("could not write frame to %s: %w", imgFile, err)
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1e6)

	displayFrameStats(r.Stats())
	return nil
}

// Render frames into an opengl window until it is closed.
func RenderInteractive(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	camera := r.Camera()
	window, err := display.NewWindow(camera.ImageWidth(), camera.ImageHeight(), "lumen")
	if err != nil {
		return err
	}
	defer window.Close()

	var frameCount int
	err = window.Run(func(w *display.Window) error {
		if err := r.Render(w); err != nil {
			return err
		}
		w.SetBlockAssignments(r.BlockAssignments())

		frameCount++
		logger.Debugf("frame %d rendered in %s", frameCount, r.Stats().RenderTime)
		return nil
	})
	if err != nil {
		return err
	}

	logger.Noticef("rendered %d frames", frameCount)
	displayFrameStats(r.Stats())
	return nil
}

// Load the scene and create a renderer using the command flags.
func setupRenderer(ctx *cli.Context) (renderer.Renderer, error) {
	sc, err := loadScene(ctx)
	if err != nil {
		return nil, err
	}

	shader, err := selectShader(ctx.String("shader"), ctx.Int("max-depth"))
	if err != nil {
		return nil, err
	}

	scheduler, err := selectScheduler(ctx.String("scheduler"))
	if err != nil {
		return nil, err
	}

	width, spp := ctx.Int("width"), ctx.Int("spp")
	if width <= 0 || spp <= 0 {
		return nil, errors.New("frame width and samples per pixel must be positive")
	}

	opts := renderer.Options{
		FrameW:          uint32(width),
		AspectRatio:     float32(ctx.Float64("aspect")),
		SamplesPerPixel: uint32(spp),
		NumWorkers:      ctx.Int("workers"),
		Shader:          shader,
		Seed:            ctx.Int64("seed"),
	}

	return renderer.NewDefault(sc, scheduler, opts)
}

// Load the scene file passed as an argument or fall back to the built-in scene.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	switch ctx.NArg() {
	case 0:
		logger.Info("no scene file specified; using default scene")
		return scene.NewDefaultScene(), nil
	case 1:
		return reader.ReadScene(context.Background(), ctx.Args().First())
	default:
		return nil, errors.New("expected at most one scene file argument")
	}
}

func selectShader(name string, maxDepth int) (scene.Shader, error) {
	switch name {
	case "normals":
		return scene.NormalShader{}, nil
	case "path":
		if maxDepth <= 0 {
			return nil, errors.New("max-depth must be positive")
		}
		return scene.PathShader{MaxDepth: maxDepth}, nil
	default:
		return nil, fmt.Errorf("unsupported shader %q", name)
	}
}

func selectScheduler(name string) (tracer.BlockScheduler, error) {
	switch name {
	case "naive":
		return tracer.NaiveScheduler(), nil
	case "perfect":
		return tracer.PerfectScheduler(), nil
	default:
		return nil, fmt.Errorf("unsupported block scheduler %q", name)
	}
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", stats.Table())
}
