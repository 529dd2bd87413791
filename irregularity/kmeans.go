package irregularity

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style avalanche finalizer, giving each
// k-means restart an independent, reproducible stream from one base
// seed (grounded on tsp/rng.go's deriveSeed).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// clusterModel is the fitted reference used by the statistical-outlier
// detector: either a set of k-means centroids, or, when too few rows
// were available to cluster meaningfully, the single row mean (K < 2
// collapses the cluster set to the single row mean).
type clusterModel struct {
	centroids [][]float64
}

// nearestDistance returns the Euclidean distance from row to its
// nearest centroid.
func (m clusterModel) nearestDistance(row []float64) float64 {
	best := euclidean(row, m.centroids[0])
	for _, c := range m.centroids[1:] {
		if d := euclidean(row, c); d < best {
			best = d
		}
	}
	return best
}

func euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// fitClusters fits K-means (K = min(10, len(rows)/100), n_init
// restarts, fixed seed) over standardized rows.
// Fewer than 2 effective clusters collapses to the row mean.
func fitClusters(rows [][]float64, seed int64, nInit int) clusterModel {
	k := len(rows) / 100
	if k > 10 {
		k = 10
	}
	if k < 2 || len(rows) == 0 {
		return clusterModel{centroids: [][]float64{columnMean(rows)}}
	}

	var best [][]float64
	bestInertia := -1.0
	for run := 0; run < nInit; run++ {
		rng := rand.New(rand.NewSource(deriveSeed(seed, uint64(run))))
		centroids, inertia := kmeansOnce(rows, k, rng)
		if bestInertia < 0 || inertia < bestInertia {
			bestInertia = inertia
			best = centroids
		}
	}
	return clusterModel{centroids: best}
}

// kmeansOnce runs Lloyd's algorithm to convergence (or a generous
// iteration cap) from a k-means++ seeded initialization, returning the
// final centroids and total within-cluster inertia.
func kmeansOnce(rows [][]float64, k int, rng *rand.Rand) (centroids [][]float64, inertia float64) {
	centroids = kmeansPlusPlusInit(rows, k, rng)
	assign := make([]int, len(rows))

	const maxIter = 100
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, row := range rows {
			best, bestDist := 0, euclidean(row, centroids[0])
			for c := 1; c < k; c++ {
				if d := euclidean(row, centroids[c]); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		cols := len(rows[0])
		for c := range sums {
			sums[c] = make([]float64, cols)
		}
		for i, row := range rows {
			c := assign[i]
			counts[c]++
			for j, v := range row {
				sums[c][j] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue // keep previous centroid; empty cluster stays put
			}
			for j := range sums[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}

		if !changed && iter > 0 {
			break
		}
	}

	inertia = 0.0
	for i, row := range rows {
		d := euclidean(row, centroids[assign[i]])
		inertia += d * d
	}
	return centroids, inertia
}

// kmeansPlusPlusInit seeds k centroids via k-means++: the first is
// uniform random, each subsequent centroid is chosen with probability
// proportional to its squared distance from the nearest already-chosen
// centroid.
func kmeansPlusPlusInit(rows [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(rows)
	chosen := make([][]float64, 0, k)
	first := rows[rng.Intn(n)]
	chosen = append(chosen, append([]float64(nil), first...))

	dist := make([]float64, n)
	for len(chosen) < k {
		total := 0.0
		for i, row := range rows {
			d := euclidean(row, chosen[0])
			for _, c := range chosen[1:] {
				if alt := euclidean(row, c); alt < d {
					d = alt
				}
			}
			dist[i] = d * d
			total += dist[i]
		}
		if total <= 0 {
			chosen = append(chosen, append([]float64(nil), rows[rng.Intn(n)]...))
			continue
		}
		target := rng.Float64() * total
		acc := 0.0
		pick := n - 1
		for i, d := range dist {
			acc += d
			if acc >= target {
				pick = i
				break
			}
		}
		chosen = append(chosen, append([]float64(nil), rows[pick]...))
	}
	return chosen
}

func columnMean(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	mean := make([]float64, cols)
	for _, r := range rows {
		for j, v := range r {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(rows))
	}
	return mean
}
