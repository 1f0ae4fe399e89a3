// Package skematika turns images into knitting charts: a grid of stitches,
// each holding an index into a small yarn palette.
package skematika

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/skematika/palette"
	"github.com/setanarut/skematika/utils"
)

var (
	ErrFileNotFound = errors.New("image file not found")
	ErrInvalidImage = errors.New("invalid image")
	// ErrInvalidArgument is shared with the palette package.
	ErrInvalidArgument = palette.ErrInvalidArgument
)

// Default palette entries.
var (
	Background = colorful.Color{R: 1, G: 1, B: 1}
	Foreground = colorful.Color{R: 0, G: 0, B: 0}
)

// Pattern is a knitting chart of fixed size. Width and height never change;
// the grid and palette are replaced as a whole by Checkerboard, SparseDots
// and the Quantize methods.
//
// A Pattern has a single writer: callers must not run two of those methods
// on the same Pattern concurrently.
type Pattern struct {
	Name    string
	width   int
	height  int
	grid    [][]uint8
	palette []colorful.Color
}

// NewPattern returns a width×height pattern with an all-zero grid and the
// default white/black palette.
func NewPattern(width, height int, name string) (*Pattern, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: pattern size %dx%d", ErrInvalidArgument, width, height)
	}
	return &Pattern{
		Name:    name,
		width:   width,
		height:  height,
		grid:    newGrid(width, height),
		palette: defaultPalette(),
	}, nil
}

func newGrid(w, h int) [][]uint8 {
	g := make([][]uint8, h)
	for r := range g {
		g[r] = make([]uint8, w)
	}
	return g
}

func defaultPalette() []colorful.Color {
	return []colorful.Color{Background, Foreground}
}

// Checkerboard marks every cell whose row+col is even.
func (p *Pattern) Checkerboard() {
	p.fill(func(r, c int) bool { return (r+c)%2 == 0 })
}

// SparseDots marks every cell whose row+col is a multiple of 10.
func (p *Pattern) SparseDots() {
	p.fill(func(r, c int) bool { return (r+c)%10 == 0 })
}

func (p *Pattern) fill(mark func(r, c int) bool) {
	grid := newGrid(p.width, p.height)
	for r := range p.height {
		for c := range p.width {
			if mark(r, c) {
				grid[r][c] = 1
			}
		}
	}
	p.grid = grid
	p.palette = defaultPalette()
}

// QuantizeFromImage replaces the chart with nColors yarns extracted from
// the image at path, with the remaining settings from OptionsFromGrid.
func (p *Pattern) QuantizeFromImage(path string, nColors int) error {
	opt := OptionsFromGrid(p.width, p.height)
	opt.Colors = nColors
	return p.QuantizeFile(path, opt)
}

// QuantizeFile loads the image at path and calls QuantizeImage.
// Missing files yield ErrFileNotFound and undecodable ones ErrInvalidImage;
// in both cases the pattern is left unchanged.
func (p *Pattern) QuantizeFile(path string, opt Options) error {
	if err := opt.validate(); err != nil {
		return err
	}
	img, err := utils.ReadImage(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return p.QuantizeImage(img, opt)
}

// QuantizeImage resamples img to the pattern size, extracts opt.Colors
// palette colors and assigns each stitch its nearest one. The grid and
// palette are only replaced when every step succeeds.
func (p *Pattern) QuantizeImage(img image.Image, opt Options) error {
	if err := opt.validate(); err != nil {
		return err
	}
	small, err := resample(img, p.height, p.width, opt.Kernel)
	if err != nil {
		return err
	}
	pal, err := palette.Extract(small, opt.Colors, opt.Palette)
	if err != nil {
		return fmt.Errorf("extract palette: %w", err)
	}
	if opt.SortPalette {
		palette.SortByBrightness(pal)
	}
	grid, err := Quantize(small, pal, opt.Palette.Metric)
	if err != nil {
		return err
	}
	p.grid = grid
	p.palette = pal
	return nil
}

// Dimensions returns the chart size in stitches.
func (p *Pattern) Dimensions() (width, height int) {
	return p.width, p.height
}

// Grid returns a copy of the stitch grid, indexed [row][col].
func (p *Pattern) Grid() [][]uint8 {
	out := make([][]uint8, len(p.grid))
	for r, row := range p.grid {
		out[r] = append([]uint8(nil), row...)
	}
	return out
}

// At returns the palette index of the stitch at row, col.
func (p *Pattern) At(row, col int) uint8 {
	return p.grid[row][col]
}

// Palette returns a copy of the yarn colors.
func (p *Pattern) Palette() []colorful.Color {
	return append([]colorful.Color(nil), p.palette...)
}

// ColorModel derives an image/color palette from the current yarn colors.
// It is rebuilt on every call.
func (p *Pattern) ColorModel() color.Palette {
	out := make(color.Palette, len(p.palette))
	for i, c := range p.palette {
		out[i] = toRGBA(c)
	}
	return out
}

// Chart symbols by palette index; indices past the table print as '?'.
const chartSymbols = "ox#*+=%@&$abcdefghijklmnopqrstuvwxyz"

// String prints the name followed by one line per row, 'o' for the
// background and 'x' for the first yarn.
func (p *Pattern) String() string {
	var sb strings.Builder
	if p.Name != "" {
		sb.WriteString(p.Name)
		sb.WriteByte('\n')
	}
	for _, row := range p.grid {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if int(v) < len(chartSymbols) {
				sb.WriteByte(chartSymbols[v])
			} else {
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
