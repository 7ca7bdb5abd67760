// Package cc implements connected-components clustering at a score
// threshold via union-find: the cheap baseline clustering alongside
// dbscan/kmedoids/mcl.
package cc

import "github.com/wang-q/hnsm-sub000/matrix"

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// PerformClustering unions every pair whose score meets threshold (score
// interpreted as a similarity: higher is closer) and returns the resulting
// connected components as clusters of point indices.
func PerformClustering(m *matrix.Symmetric, threshold float64) [][]int {
	n := m.Size()
	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Get(i, j) >= threshold {
				uf.union(i, j)
			}
		}
	}
	byRoot := make(map[int][]int)
	for p := 0; p < n; p++ {
		r := uf.find(p)
		byRoot[r] = append(byRoot[r], p)
	}
	clusters := make([][]int, 0, len(byRoot))
	for _, cl := range byRoot {
		clusters = append(clusters, cl)
	}
	return clusters
}
