package skematika

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var gridLine = color.RGBA{R: 96, G: 96, B: 96, A: 255}

// Render draws the chart with cellSize×cellSize pixels per stitch and a
// one pixel grid line around every cell.
func (p *Pattern) Render(cellSize int) *image.RGBA {
	cellSize = max(cellSize, 2)
	w := p.width*cellSize + 1
	h := p.height*cellSize + 1
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(gridLine), image.Point{}, draw.Src)

	colors := p.ColorModel()
	for r, row := range p.grid {
		for c, v := range row {
			cell := image.Rect(c*cellSize+1, r*cellSize+1, (c+1)*cellSize, (r+1)*cellSize)
			draw.Draw(img, cell, image.NewUniform(colors[v]), image.Point{}, draw.Src)
		}
	}
	return img
}

// Layers returns one mask per palette color, 255 where a stitch uses it.
// Each mask is width×height pixels, one per stitch.
func (p *Pattern) Layers() []*image.Gray {
	out := make([]*image.Gray, len(p.palette))
	for ch := range out {
		out[ch] = image.NewGray(image.Rect(0, 0, p.width, p.height))
	}
	for r, row := range p.grid {
		for c, v := range row {
			out[v].SetGray(c, r, color.Gray{Y: 255})
		}
	}
	return out
}

// RGBALayers is Layers tinted with each palette color.
func (p *Pattern) RGBALayers() []*image.NRGBA {
	masks := p.Layers()
	out := make([]*image.NRGBA, len(masks))
	for ch, mask := range masks {
		rgba := toRGBA(p.palette[ch])
		layer := image.NewNRGBA(mask.Rect)
		for y := range p.height {
			for x := range p.width {
				layer.SetNRGBA(x, y, color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: mask.GrayAt(x, y).Y})
			}
		}
		out[ch] = layer
	}
	return out
}

// RenderSwatch draws a gauge swatch: widthSts×heightSts white cells with
// black borders and a "V" stitch mark in each.
func RenderSwatch(widthSts, heightSts, cellSize int) *image.RGBA {
	face := basicfont.Face7x13
	cellSize = max(cellSize, face.Height+2)
	widthSts = max(widthSts, 1)
	heightSts = max(heightSts, 1)

	img := image.NewRGBA(image.Rect(0, 0, widthSts*cellSize+1, heightSts*cellSize+1))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}
	adv := d.MeasureString("V").Ceil()
	for r := range heightSts {
		for c := range widthSts {
			x0, y0 := c*cellSize, r*cellSize
			draw.Draw(img, image.Rect(x0+1, y0+1, x0+cellSize, y0+cellSize), image.White, image.Point{}, draw.Src)
			d.Dot = fixed.P(x0+(cellSize-adv)/2+1, y0+(cellSize-face.Height)/2+face.Ascent+1)
			d.DrawString("V")
		}
	}
	return img
}
