package skematika

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/skematika/palette"
)

// Quantize assigns every pixel of img the index of its nearest palette entry
// under metric. Ties go to the lowest index. The result is indexed [row][col].
func Quantize(img *image.NRGBA, pal []colorful.Color, metric palette.Metric) ([][]uint8, error) {
	if len(pal) == 0 || len(pal) > palette.MaxColors {
		return nil, fmt.Errorf("%w: palette size %d outside [1, %d]", ErrInvalidArgument, len(pal), palette.MaxColors)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	b := img.Bounds()
	grid := make([][]uint8, b.Dy())
	for y := range grid {
		row := make([]uint8, b.Dx())
		for x := range row {
			c := palette.ToColor(img.NRGBAAt(b.Min.X+x, b.Min.Y+y))
			row[x] = uint8(palette.Nearest(c, pal, metric))
		}
		grid[y] = row
	}
	return grid, nil
}
