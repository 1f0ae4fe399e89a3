package skematika

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resample scales img to exactly width×height pixels with a Catmull-Rom
// filter. The filter widens with the scale factor, so heavy downsampling
// averages over the source instead of skipping pixels.
func Resample(img image.Image, height, width int) (*image.NRGBA, error) {
	return resample(img, height, width, KernelCatmullRom)
}

func resample(img image.Image, height, width int, kernel Kernel) (*image.NRGBA, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d", ErrInvalidArgument, width, height)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrInvalidImage)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	var k *draw.Kernel
	switch kernel {
	case KernelBiLinear:
		k = draw.BiLinear
	default:
		k = draw.CatmullRom
	}
	k.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
