package main

import (
	"os"
	"runtime"

	"github.com/achilleasa/lumen/cmd"
	"github.com/achilleasa/lumen/log"
	"github.com/urfave/cli"
)

func init() {
	// glfw event handling must run on the main thread
	runtime.LockOSThread()
}

func renderFlags(withOutput bool) []cli.Flag {
	flags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 1500,
			Usage: "frame width",
		},
		cli.Float64Flag{
			Name:  "aspect",
			Value: 2.0,
			Usage: "frame aspect ratio (width / height)",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 10,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:   "workers",
			Value:  0,
			Usage:  "number of cpu tracers; 0 uses one tracer per cpu",
			EnvVar: "LUMEN_WORKERS",
		},
		cli.StringFlag{
			Name:  "shader",
			Value: "normals",
			Usage: "sample shader (normals, path)",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Value: 10,
			Usage: "max ray bounces for the path shader",
		},
		cli.StringFlag{
			Name:  "scheduler",
			Value: "naive",
			Usage: "block scheduler (naive, perfect)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "random seed; 0 uses a time-based seed",
		},
	}

	if withOutput {
		flags = append(flags, cli.StringFlag{
			Name:  "out, o",
			Value: "frame.png",
			Usage: "image filename for the rendered frame",
		})
	}
	return flags
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render sphere scenes using ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringSliceFlag{
			Name:  "log-level",
			Value: &cli.StringSlice{},
			Usage: "set the log level globally (level) or for a single logger (module=level); may be repeated",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame and save it as a PNG image. If no scene file is
specified the built-in scene is rendered. Scene files may be local paths or
http/https URLs.`,
					ArgsUsage: "[scene.json]",
					Flags:     renderFlags(true),
					Action:    cmd.RenderFrame,
				},
				{
					Name:  "interactive",
					Usage: "render interactive view of the scene",
					Description: `
Continuously render frames into a window. Press Tab to toggle the tracer
block overlay and Escape to exit.`,
					ArgsUsage: "[scene.json]",
					Flags:     renderFlags(false),
					Action:    cmd.RenderInteractive,
				},
			},
		},
		{
			Name:      "scene",
			Usage:     "display scene contents",
			ArgsUsage: "[scene.json]",
			Action:    cmd.ShowScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("lumen").Errorf("error: %v", err)
		os.Exit(1)
	}
}
