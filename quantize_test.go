package skematika

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/skematika/palette"
)

func TestQuantize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{250, 10, 10, 255})
	img.SetNRGBA(1, 0, color.NRGBA{5, 5, 5, 255})
	img.SetNRGBA(2, 0, color.NRGBA{240, 240, 250, 255})
	img.SetNRGBA(0, 1, color.NRGBA{20, 20, 230, 255})
	img.SetNRGBA(1, 1, color.NRGBA{200, 30, 60, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 0, 0})

	pal := []colorful.Color{
		{R: 1, G: 1, B: 1},
		{R: 0, G: 0, B: 0},
		{R: 1, G: 0, B: 0},
		{R: 0, G: 0, B: 1},
	}
	want := [][]uint8{
		{2, 1, 0},
		{3, 2, 1},
	}
	for _, m := range []palette.Metric{palette.MetricRGB, palette.MetricLab, palette.MetricCIEDE2000} {
		got, err := Quantize(img, pal, m)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: grid mismatch (-want +got):\n%s", m, diff)
		}
	}
}

func TestQuantizeTiesToLowestIndex(t *testing.T) {
	img := solidImage(3, 3, color.NRGBA{R: 10, G: 200, B: 30, A: 255})
	c := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	got, err := Quantize(img, []colorful.Color{c, c, c}, palette.MetricRGB)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range got {
		for _, v := range row {
			if v != 0 {
				t.Fatalf("index = %d, want 0", v)
			}
		}
	}
}

func TestQuantizeErrors(t *testing.T) {
	img := solidImage(2, 2, color.White)
	if _, err := Quantize(img, nil, palette.MetricRGB); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty palette: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Quantize(img, make([]colorful.Color, 300), palette.MetricRGB); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("oversized palette: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Quantize(nil, []colorful.Color{{}}, palette.MetricRGB); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil image: error = %v, want ErrInvalidImage", err)
	}
}

func TestQuantizeImageLabMetric(t *testing.T) {
	p := mustPattern(t, 8, 8)
	opt := OptionsFromGrid(8, 8)
	opt.Colors = 3
	opt.Palette.Metric = palette.MetricLab
	if err := p.QuantizeImage(gradient(24, 24), opt); err != nil {
		t.Fatal(err)
	}
	if n := len(p.Palette()); n != 3 {
		t.Errorf("len(palette) = %d, want 3", n)
	}
	checkGrid(t, p)
}

func TestQuantizeImageDominantColor(t *testing.T) {
	p := mustPattern(t, 10, 10)
	opt := DefaultOptions()
	opt.Colors = 2
	opt.Palette.Method = palette.MethodDominantColor
	if err := p.QuantizeImage(gradient(40, 40), opt); err != nil {
		t.Fatal(err)
	}
	if n := len(p.Palette()); n != 2 {
		t.Errorf("len(palette) = %d, want 2", n)
	}
	checkGrid(t, p)
}
