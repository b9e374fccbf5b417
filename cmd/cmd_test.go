package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
	"github.com/urfave/cli"
)

func TestSelectShader(t *testing.T) {
	type spec struct {
		name     string
		maxDepth int
		exp      scene.Shader
		expErr   bool
	}

	specs := []spec{
		{"normals", 0, scene.NormalShader{}, false},
		{"path", 5, scene.PathShader{MaxDepth: 5}, false},
		{"path", 0, nil, true},
		{"phong", 10, nil, true},
	}

	for index, s := range specs {
		shader, err := selectShader(s.name, s.maxDepth)
		if s.expErr != (err != nil) {
			t.Errorf("[spec %d] expected error to be %t; got %v", index, s.expErr, err)
			continue
		}
		if shader != s.exp {
			t.Errorf("[spec %d] expected shader %#v; got %#v", index, s.exp, shader)
		}
	}
}

func TestSelectScheduler(t *testing.T) {
	for _, name := range []string{"naive", "perfect"} {
		if sch, err := selectScheduler(name); err != nil || sch == nil {
			t.Fatalf("expected scheduler for %q; got %v, %v", name, sch, err)
		}
	}

	if _, err := selectScheduler("random"); err == nil {
		t.Fatal("expected an error for an unknown scheduler")
	}
}

func TestSceneTable(t *testing.T) {
	sc := scene.NewScene("test")
	steel, err := sc.AddMaterial("steel", scene.MustNewMetal(types.Splat(0.8), 0.25))
	if err != nil {
		t.Fatal(err)
	}
	if err = sc.AddSphere(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, steel)); err != nil {
		t.Fatal(err)
	}

	out := sceneTable(sc)
	for _, exp := range []string{"steel", "metal", "0.250", "(0.000, 0.000, -1.000)", "sphere 0"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected scene table to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestParseLogLevels(t *testing.T) {
	type spec struct {
		in     []string
		exp    []levelOverride
		expErr bool
	}

	specs := []spec{
		{nil, []levelOverride{}, false},
		{[]string{"debug"}, []levelOverride{{"", log.Debug}}, false},
		{[]string{"renderer=info", "scene reader = warning"}, []levelOverride{{"renderer", log.Info}, {"scene reader", log.Warning}}, false},
		{[]string{"renderer=loud"}, nil, true},
		{[]string{"=debug"}, nil, true},
	}

	for index, s := range specs {
		got, err := parseLogLevels(s.in)
		if s.expErr != (err != nil) {
			t.Errorf("[spec %d] expected error to be %t; got %v", index, s.expErr, err)
			continue
		}
		if s.expErr {
			continue
		}
		if len(got) != len(s.exp) {
			t.Errorf("[spec %d] expected %d overrides; got %d", index, len(s.exp), len(got))
			continue
		}
		for i := range got {
			if got[i] != s.exp[i] {
				t.Errorf("[spec %d] expected override %d to be %+v; got %+v", index, i, s.exp[i], got[i])
			}
		}
	}
}

func TestSetupLoggingModuleOverride(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	defer log.SetSink(os.Stderr)
	defer log.SetLevel(log.Notice)

	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v"},
		cli.BoolFlag{Name: "vv"},
		cli.StringSliceFlag{Name: "log-level", Value: &cli.StringSlice{}},
	}
	app.Action = func(ctx *cli.Context) error {
		if err := setupLogging(ctx); err != nil {
			return err
		}
		log.New("chatty module").Debug("debug from chatty module")
		log.New("quiet module").Info("info from quiet module")
		return nil
	}

	if err := app.Run([]string{"lumen", "--log-level", "warning", "--log-level", "chatty module=debug"}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "debug from chatty module") {
		t.Fatalf("expected module override to enable debug output; got %q", out)
	}
	if strings.Contains(out, "info from quiet module") {
		t.Fatalf("expected global warning level to filter info output; got %q", out)
	}

	if err := app.Run([]string{"lumen", "--log-level", "shouty"}); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}
