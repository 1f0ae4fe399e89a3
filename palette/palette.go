// Package palette reduces an image to a small set of representative colors.
package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// MaxColors is the largest palette a stitch grid can index.
const MaxColors = 256

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoSamples       = errors.New("no samples to cluster")
)

type Method int

const (
	MethodKMeans Method = iota
	MethodDominantColor
)

func (m Method) String() string {
	switch m {
	case MethodDominantColor:
		return "dominantcolor"
	default:
		return "kmeans"
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "kmeans":
		return MethodKMeans, true
	case "dominantcolor":
		return MethodDominantColor, true
	}
	return MethodKMeans, false
}

type Options struct {
	// Extraction algorithm. Only MethodKMeans is reproducible.
	Method Method
	// Color space for clustering. MetricRGB matches plain component distance.
	Metric Metric
	// Seed for centroid initialization. Same seed, same samples => same palette.
	Seed uint64
	// Independent k-means++ initializations; the lowest-inertia run wins.
	Restarts int
	// Upper bound on Lloyd iterations per restart.
	MaxIterations int
	// Stop once the summed squared centroid shift falls to this value.
	Tolerance float64
}

func DefaultOptions() Options {
	return Options{
		Method:        MethodKMeans,
		Metric:        MetricRGB,
		Seed:          0,
		Restarts:      4,
		MaxIterations: 300,
		Tolerance:     1e-4,
	}
}

// Extract returns exactly k colors representing img.
func Extract(img image.Image, k int, opt Options) ([]colorful.Color, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	switch opt.Method {
	case MethodDominantColor:
		p := ExtractDominant(img, k)
		if len(p) != 0 {
			return p, nil
		}
		log.Println("palette warning: dominantcolor returned empty palette, falling back to kmeans")
	}
	samples := Samples(img, opt.Metric)
	if samples == nil {
		return nil, ErrNoSamples
	}
	return KMeans(samples, k, opt)
}

// Samples flattens img into an N×3 matrix in row-major pixel order, using
// the clustering space of m. Alpha is dropped. It returns nil for an empty
// image.
func Samples(img image.Image, m Metric) *mat.Dense {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	data := make([]float64, 0, w*h*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := m.Coordinates(ToColor(img.At(x, y)))
			data = append(data, p[:]...)
		}
	}
	return mat.NewDense(w*h, 3, data)
}

// ToColor converts c to a colorful.Color using its straight (non-premultiplied)
// 8-bit components.
func ToColor(c color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255.0,
		G: float64(n.G) / 255.0,
		B: float64(n.B) / 255.0,
	}
}

func checkK(k int) error {
	if k <= 0 || k > MaxColors {
		return fmt.Errorf("%w: color count %d outside [1, %d]", ErrInvalidArgument, k, MaxColors)
	}
	return nil
}
