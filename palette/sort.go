package palette

import (
	"cmp"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// SortByBrightness orders colors from darkest to brightest by relative
// luminance. Equal colors keep their order.
func SortByBrightness(palette []colorful.Color) {
	slices.SortStableFunc(palette, func(a, b colorful.Color) int {
		return cmp.Compare(luminance(a), luminance(b))
	})
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
