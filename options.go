package skematika

import (
	"fmt"

	"github.com/setanarut/skematika/palette"
)

// Kernel is the resampling filter used to fit an image to the stitch grid.
type Kernel int

const (
	// KernelCatmullRom is a cubic filter; sharpest of the anti-aliased kernels.
	KernelCatmullRom Kernel = iota
	// KernelBiLinear is a tent filter; softer, fewer ringing artifacts.
	KernelBiLinear
)

func (k Kernel) String() string {
	switch k {
	case KernelBiLinear:
		return "bilinear"
	default:
		return "catmullrom"
	}
}

type Options struct {
	// Number of palette entries (yarn colors) to extract.
	// Ideal start: 2-6. Every extra color is another yarn to carry.
	Colors int
	// Resampling filter applied before clustering.
	Kernel Kernel
	// Palette extraction settings. The Metric is also used for quantization.
	Palette palette.Options
	// Order the extracted palette from darkest to brightest before
	// quantization. Off by default so index order is the clustering order.
	SortPalette bool
}

func DefaultOptions() Options {
	return Options{
		Colors:  4,
		Kernel:  KernelCatmullRom,
		Palette: palette.DefaultOptions(),
	}
}

// OptionsFromGrid scales the clustering effort with the number of stitches.
// Small charts are cheap, so they get more restarts.
func OptionsFromGrid(width, height int) Options {
	opt := DefaultOptions()
	if width <= 0 || height <= 0 {
		return opt
	}
	cells := width * height
	switch {
	case cells <= 64*64:
		opt.Palette.Restarts = 10
	case cells > 256*256:
		opt.Palette.Restarts = 2
	}
	return opt
}

func (o Options) validate() error {
	if o.Colors <= 0 || o.Colors > palette.MaxColors {
		return fmt.Errorf("%w: color count %d outside [1, %d]", ErrInvalidArgument, o.Colors, palette.MaxColors)
	}
	return nil
}
