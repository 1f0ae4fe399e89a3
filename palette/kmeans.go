package palette

import (
	"log"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KMeans clusters the rows of samples into k groups and returns the
// centroids converted back to RGB. Rows must already be in the clustering
// space of opt.Metric (see Samples).
//
// The result always has k entries. When the samples hold fewer than k
// distinct colors the surplus centroids duplicate existing ones.
func KMeans(samples *mat.Dense, k int, opt Options) ([]colorful.Color, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if samples == nil || samples.IsEmpty() {
		return nil, ErrNoSamples
	}
	dataset := observations(samples)

	restarts := max(opt.Restarts, 1)
	maxIter := max(opt.MaxIterations, 1)

	var best clusters.Clusters
	bestInertia := math.Inf(1)
	for run := range restarts {
		rng := rand.New(rand.NewPCG(opt.Seed, uint64(run)))
		cc := seedPlusPlus(dataset, k, rng)
		inertia := lloyd(dataset, cc, maxIter, opt.Tolerance)
		if best == nil || inertia < bestInertia {
			best = cc
			bestInertia = inertia
		}
	}

	out := make([]colorful.Color, k)
	distinct := make(map[colorful.Color]struct{}, k)
	for i, c := range best {
		out[i] = opt.Metric.Color(c.Center)
		distinct[out[i]] = struct{}{}
	}
	if len(distinct) < k {
		log.Printf("palette warning: only %d distinct colors for %d clusters, returning duplicate centroids", len(distinct), k)
	}
	return out, nil
}

func observations(samples *mat.Dense) clusters.Observations {
	n, _ := samples.Dims()
	out := make(clusters.Observations, n)
	for i := range n {
		out[i] = clusters.Coordinates(mat.Row(nil, i, samples))
	}
	return out
}

// seedPlusPlus picks k initial centres with k-means++ (D² weighting).
// Once every sample coincides with a chosen centre, further centres are
// duplicates.
func seedPlusPlus(dataset clusters.Observations, k int, rng *rand.Rand) clusters.Clusters {
	cc := make(clusters.Clusters, 0, k)
	first := slices.Clone(dataset[rng.IntN(len(dataset))].Coordinates())
	cc = append(cc, clusters.Cluster{Center: first})

	d2 := make([]float64, len(dataset))
	for i, o := range dataset {
		d2[i] = o.Distance(first)
	}
	for len(cc) < k {
		var pick int
		total := floats.Sum(d2)
		if total == 0 {
			pick = rng.IntN(len(dataset))
		} else {
			target := rng.Float64() * total
			pick = -1
			last := 0
			for i, w := range d2 {
				if w == 0 {
					continue
				}
				last = i
				target -= w
				if target < 0 {
					pick = i
					break
				}
			}
			if pick < 0 {
				pick = last
			}
		}
		center := slices.Clone(dataset[pick].Coordinates())
		cc = append(cc, clusters.Cluster{Center: center})
		for i, o := range dataset {
			d2[i] = min(d2[i], o.Distance(center))
		}
	}
	return cc
}

// lloyd refines cc in place and returns the final inertia.
func lloyd(dataset clusters.Observations, cc clusters.Clusters, maxIter int, tol float64) float64 {
	labels := make([]int, len(dataset))
	for i := range labels {
		labels[i] = -1
	}
	prev := make([]clusters.Coordinates, len(cc))
	for range maxIter {
		for i := range cc {
			prev[i] = cc[i].Center
		}
		cc.Reset()
		changed := 0
		for i, o := range dataset {
			ci := cc.Nearest(o)
			cc[ci].Append(o)
			if labels[i] != ci {
				labels[i] = ci
				changed++
			}
		}
		moved := reseedEmpty(dataset, cc, labels)
		cc.Recenter()

		shift := 0.0
		for i := range cc {
			shift += prev[i].Distance(cc[i].Center)
		}
		if moved == 0 && (changed == 0 || shift <= tol) {
			break
		}
	}
	return inertia(dataset, cc)
}

// reseedEmpty moves every empty cluster onto the sample farthest from its
// current centre. Clusters stay put when all samples sit on their centres.
func reseedEmpty(dataset clusters.Observations, cc clusters.Clusters, labels []int) int {
	moved := 0
	taken := make(map[int]bool)
	for ci := range cc {
		if len(cc[ci].Observations) > 0 {
			continue
		}
		far, farDist := -1, 0.0
		for i, o := range dataset {
			if taken[i] {
				continue
			}
			if d := o.Distance(cc[labels[i]].Center); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			continue
		}
		taken[far] = true
		cc[ci].Center = slices.Clone(dataset[far].Coordinates())
		moved++
	}
	return moved
}

func inertia(dataset clusters.Observations, cc clusters.Clusters) float64 {
	d := make([]float64, len(dataset))
	for i, o := range dataset {
		d[i] = o.Distance(cc[cc.Nearest(o)].Center)
	}
	return floats.Sum(d)
}
