// Package dbscan implements density-based clustering over a symmetric score
// matrix treated as a distance matrix.
package dbscan

import "github.com/wang-q/hnsm-sub000/matrix"

// Config holds the DBSCAN parameters.
type Config struct {
	Eps       float64
	MinPoints int
}

// PerformClustering assigns each of the N points a cluster id, or none for
// noise. Cluster ids are assigned in the order clusters are opened.
func PerformClustering(m *matrix.Symmetric, cfg Config) []*int {
	n := m.Size()
	labels := make([]*int, n)
	visited := make([]bool, n)

	neighbors := func(p int) []int {
		var out []int
		for q := 0; q < n; q++ {
			if q != p && m.Get(p, q) <= cfg.Eps {
				out = append(out, q)
			}
		}
		return out
	}
	isCore := func(p int) bool {
		return len(neighbors(p))+1 >= cfg.MinPoints
	}

	nextID := 0
	for p := 0; p < n; p++ {
		if visited[p] {
			continue
		}
		visited[p] = true
		if !isCore(p) {
			continue
		}

		id := nextID
		nextID++
		assign := func(x int) {
			v := id
			labels[x] = &v
		}
		assign(p)

		queue := neighbors(p)
		for i := 0; i < len(queue); i++ {
			q := queue[i]
			if !visited[q] {
				visited[q] = true
				if isCore(q) {
					queue = append(queue, neighbors(q)...)
				}
			}
			if labels[q] == nil {
				assign(q)
			}
		}
	}
	return labels
}

// ResultsCluster groups point indices by cluster; noise points become
// trailing singleton clusters.
func ResultsCluster(labels []*int) [][]int {
	byID := make(map[int][]int)
	maxID := -1
	var noise []int
	for p, id := range labels {
		if id == nil {
			noise = append(noise, p)
			continue
		}
		byID[*id] = append(byID[*id], p)
		if *id > maxID {
			maxID = *id
		}
	}
	clusters := make([][]int, 0, maxID+1+len(noise))
	for id := 0; id <= maxID; id++ {
		clusters = append(clusters, byID[id])
	}
	for _, p := range noise {
		clusters = append(clusters, []int{p})
	}
	return clusters
}

// ResultsPair returns (representative, member) pairs for every point: the
// representative of a cluster is the member minimizing the sum of distances
// to the rest of the cluster; noise points are their own representative.
func ResultsPair(m *matrix.Symmetric, labels []*int) [][2]int {
	clusters := ResultsCluster(labels)
	var out [][2]int
	for _, cl := range clusters {
		if len(cl) == 1 {
			out = append(out, [2]int{cl[0], cl[0]})
			continue
		}
		rep := cl[0]
		best := sumDist(m, rep, cl)
		for _, cand := range cl[1:] {
			d := sumDist(m, cand, cl)
			if d < best {
				best = d
				rep = cand
			}
		}
		for _, member := range cl {
			out = append(out, [2]int{rep, member})
		}
	}
	return out
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
