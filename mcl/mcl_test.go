package mcl

import (
	"sort"
	"testing"
)

func TestPerformClusteringTwoCliques(t *testing.T) {
	clique1 := []int{0, 1, 2}
	clique2 := []int{3, 4}
	var edges []Edge
	for _, c := range [][]int{clique1, clique2} {
		for _, i := range c {
			edges = append(edges, Edge{i, i, 1.0})
			for _, j := range c {
				if i != j {
					edges = append(edges, Edge{i, j, 1.0})
				}
			}
		}
	}

	clusters := PerformClustering(5, edges, Config{Inflation: 2.0})
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d: %v", len(clusters), clusters)
	}
	for _, cl := range clusters {
		sort.Ints(cl)
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i][0] < clusters[j][0] })

	want := [][]int{{0, 1, 2}, {3, 4}}
	for i := range want {
		if !equal(clusters[i], want[i]) {
			t.Errorf("cluster %d = %v, want %v", i, clusters[i], want[i])
		}
	}
}

func equal(a, b []int) bool {
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

func TestPerformClusteringEmpty(t *testing.T) {
	if got := PerformClustering(0, nil, Config{}); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
