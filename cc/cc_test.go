package cc

import (
	"sort"
	"testing"

	"github.com/wang-q/hnsm-sub000/matrix"
)

func TestPerformClustering(t *testing.T) {
	m := matrix.New(5, 1, 0)
	m.Set(0, 1, 1)
	m.Set(1, 2, 1)
	m.Set(3, 4, 1)

	clusters := PerformClustering(m, 1)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d: %v", len(clusters), clusters)
	}
	for _, cl := range clusters {
		sort.Ints(cl)
	}
	sizes := map[int]bool{}
	for _, cl := range clusters {
		sizes[len(cl)] = true
	}
	if !sizes[3] || !sizes[2] {
		t.Errorf("expected sizes {3,2}, got clusters %v", clusters)
	}
}
