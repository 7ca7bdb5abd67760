// Package kmedoids implements PAM-like k-medoids clustering over a symmetric
// score matrix treated as a distance matrix.
package kmedoids

import (
	"math/rand"

	"github.com/wang-q/hnsm-sub000/matrix"
)

// Config holds the k-medoids parameters.
type Config struct {
	K       int
	MaxIter int
	Runs    int
	Rand    *rand.Rand // nil uses a package-default source
}

// PerformClustering returns the clustering (list of point-index clusters)
// with the lowest total cost across Runs random-restart runs.
func PerformClustering(m *matrix.Symmetric, cfg Config) [][]int {
	n := m.Size()
	if n == 0 {
		return nil
	}
	if cfg.K >= n {
		out := make([][]int, n)
		for i := range out {
			out[i] = []int{i}
		}
		return out
	}
	if cfg.K <= 1 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return [][]int{all}
	}

	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	runs := cfg.Runs
	if runs < 1 {
		runs = 1
	}
	maxIter := cfg.MaxIter
	if maxIter < 1 {
		maxIter = 100
	}

	var bestClusters [][]int
	bestCost := -1.0

	for run := 0; run < runs; run++ {
		medoids := randomDistinct(r, n, cfg.K)
		var assign []int
		for iter := 0; iter < maxIter; iter++ {
			assign = assignPoints(m, n, medoids)
			newMedoids := updateMedoids(m, n, cfg.K, assign)
			if equalSlices(newMedoids, medoids) {
				medoids = newMedoids
				break
			}
			medoids = newMedoids
		}
		assign = assignPoints(m, n, medoids)

		cost := 0.0
		clusters := make([][]int, cfg.K)
		for p := 0; p < n; p++ {
			c := assign[p]
			clusters[c] = append(clusters[c], p)
			cost += m.Get(p, medoids[c])
		}
		if bestClusters == nil || cost < bestCost {
			bestCost = cost
			bestClusters = clusters
		}
	}
	return bestClusters
}

func randomDistinct(r *rand.Rand, n, k int) []int {
	perm := r.Perm(n)
	out := make([]int, k)
	copy(out, perm[:k])
	return out
}

// assignPoints assigns each point to its closest medoid; ties broken by
// medoid insertion order (i.e. lowest index into medoids).
func assignPoints(m *matrix.Symmetric, n int, medoids []int) []int {
	assign := make([]int, n)
	for p := 0; p < n; p++ {
		best := 0
		bestDist := m.Get(p, medoids[0])
		for c := 1; c < len(medoids); c++ {
			d := m.Get(p, medoids[c])
			if d < bestDist {
				bestDist = d
				best = c
			}
		}
		assign[p] = best
	}
	return assign
}

// updateMedoids picks, per cluster, the member minimizing the sum of
// distances to the rest of the cluster; ties broken by iteration order.
func updateMedoids(m *matrix.Symmetric, n, k int, assign []int) []int {
	members := make([][]int, k)
	for p := 0; p < n; p++ {
		c := assign[p]
		members[c] = append(members[c], p)
	}
	medoids := make([]int, k)
	for c := 0; c < k; c++ {
		cluster := members[c]
		if len(cluster) == 0 {
			medoids[c] = 0
			continue
		}
		best := cluster[0]
		bestSum := sumDist(m, best, cluster)
		for _, cand := range cluster[1:] {
			s := sumDist(m, cand, cluster)
			if s < bestSum {
				bestSum = s
				best = cand
			}
		}
		medoids[c] = best
	}
	return medoids
}

func sumDist(m *matrix.Symmetric, p int, cluster []int) float64 {
	var sum float64
	for _, q := range cluster {
		if q != p {
			sum += m.Get(p, q)
		}
	}
	return sum
}

func equalSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
