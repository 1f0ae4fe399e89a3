package skematika

import (
	"image"
	"image/color"
	"testing"
)

func TestRender(t *testing.T) {
	p := mustPattern(t, 4, 3)
	p.Checkerboard()
	const cell = 5
	img := p.Render(cell)
	if want := image.Rect(0, 0, 4*cell+1, 3*cell+1); img.Bounds() != want {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), want)
	}
	for r := range 3 {
		for c := range 4 {
			want := color.RGBA{255, 255, 255, 255}
			if p.At(r, c) == 1 {
				want = color.RGBA{0, 0, 0, 255}
			}
			if got := img.RGBAAt(c*cell+cell/2, r*cell+cell/2); got != want {
				t.Errorf("cell (%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}
	if got := img.RGBAAt(0, 0); got != gridLine {
		t.Errorf("corner = %v, want grid line %v", got, gridLine)
	}
}

func TestLayers(t *testing.T) {
	p := mustPattern(t, 10, 10)
	p.SparseDots()
	layers := p.Layers()
	if len(layers) != 2 {
		t.Fatalf("len(Layers()) = %d, want 2", len(layers))
	}
	for r := range 10 {
		for c := range 10 {
			v := p.At(r, c)
			for ch, l := range layers {
				want := uint8(0)
				if int(v) == ch {
					want = 255
				}
				if got := l.GrayAt(c, r).Y; got != want {
					t.Fatalf("layer %d at (%d, %d) = %d, want %d", ch, r, c, got, want)
				}
			}
		}
	}

	rgba := p.RGBALayers()
	if got := rgba[1].NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("RGBALayers()[1] at dot = %v, want opaque black", got)
	}
	if got := rgba[1].NRGBAAt(1, 0).A; got != 0 {
		t.Errorf("RGBALayers()[1] off dot alpha = %d, want 0", got)
	}
}

func TestRenderSwatch(t *testing.T) {
	img := RenderSwatch(3, 2, 20)
	if want := image.Rect(0, 0, 61, 41); img.Bounds() != want {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), want)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("border = %v, want black", got)
	}
	// Every cell carries some ink from its "V".
	for r := range 2 {
		for c := range 3 {
			ink := 0
			for y := r*20 + 1; y < (r+1)*20; y++ {
				for x := c*20 + 1; x < (c+1)*20; x++ {
					if img.RGBAAt(x, y).R < 128 {
						ink++
					}
				}
			}
			if ink == 0 {
				t.Errorf("cell (%d, %d) has no stitch mark", r, c)
			}
		}
	}
}
