package renderer

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/tracer"
)

func TestFrameSinkCollectsPixels(t *testing.T) {
	sink := NewFrameSink(2, 2)
	sink.Present(0, 0, color.RGBA{255, 0, 0, 255})
	sink.Present(1, 1, color.RGBA{0, 128, 255, 255})

	img := sink.Image()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("expected 2x2 image; got %v", b)
	}

	type spec struct {
		x, y int
		exp  color.RGBA
	}
	specs := []spec{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{1, 1, color.RGBA{0, 128, 255, 255}},
		{1, 0, color.RGBA{}},
	}
	for index, s := range specs {
		got := color.RGBAModel.Convert(img.At(s.x, s.y)).(color.RGBA)
		if got != s.exp {
			t.Errorf("[spec %d] expected pixel (%d, %d) to be %v; got %v", index, s.x, s.y, s.exp, got)
		}
	}
}

func TestFrameSinkSavePNG(t *testing.T) {
	r, err := NewDefault(scene.NewDefaultScene(), tracer.NaiveScheduler(), testOptions(2))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	camera := r.Camera()
	sink := NewFrameSink(camera.ImageWidth(), camera.ImageHeight())
	if err = r.Render(sink); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err = sink.SavePNG(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != camera.ImageWidth() || b.Dy() != camera.ImageHeight() {
		t.Fatalf("expected %dx%d png; got %v", camera.ImageWidth(), camera.ImageHeight(), b)
	}

	exp := sink.Image().At(3, 2)
	if got := color.RGBAModel.Convert(img.At(3, 2)); got != color.RGBAModel.Convert(exp) {
		t.Fatalf("expected decoded pixel %v; got %v", exp, got)
	}
}
