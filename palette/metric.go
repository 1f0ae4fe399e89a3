package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Metric selects the color space used for clustering and for nearest-color
// assignment.
type Metric int

const (
	// MetricRGB is plain Euclidean distance over normalized R, G, B.
	MetricRGB Metric = iota
	// MetricLab clusters in CIE L*a*b* and assigns with CIE76 distance.
	MetricLab
	// MetricCIEDE2000 clusters in CIE L*a*b* and assigns with CIEDE2000.
	MetricCIEDE2000
)

func (m Metric) String() string {
	switch m {
	case MetricLab:
		return "lab"
	case MetricCIEDE2000:
		return "ciede2000"
	default:
		return "rgb"
	}
}

// ParseMetric is the inverse of Metric.String.
func ParseMetric(s string) (Metric, bool) {
	for _, m := range []Metric{MetricRGB, MetricLab, MetricCIEDE2000} {
		if m.String() == s {
			return m, true
		}
	}
	return MetricRGB, false
}

// Coordinates returns c in the space the metric clusters in.
func (m Metric) Coordinates(c colorful.Color) [3]float64 {
	switch m {
	case MetricLab, MetricCIEDE2000:
		l, a, b := c.Lab()
		return [3]float64{l, a, b}
	default:
		return [3]float64{c.R, c.G, c.B}
	}
}

// Color maps clustering-space coordinates back to an RGB color.
func (m Metric) Color(p []float64) colorful.Color {
	switch m {
	case MetricLab, MetricCIEDE2000:
		return colorful.Lab(p[0], p[1], p[2]).Clamped()
	default:
		return colorful.Color{R: p[0], G: p[1], B: p[2]}
	}
}

func (m Metric) Distance(a, b colorful.Color) float64 {
	switch m {
	case MetricLab:
		return a.DistanceLab(b)
	case MetricCIEDE2000:
		return a.DistanceCIEDE2000(b)
	default:
		return a.DistanceRgb(b)
	}
}

// Nearest returns the index of the palette entry closest to c.
// Ties go to the lowest index. It returns -1 for an empty palette.
func Nearest(c colorful.Color, palette []colorful.Color, m Metric) int {
	best := -1
	bestDist := 0.0
	for i, p := range palette {
		d := m.Distance(c, p)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
