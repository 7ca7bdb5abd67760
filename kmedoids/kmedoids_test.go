package kmedoids

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/wang-q/hnsm-sub000/matrix"
)

func buildScenario() *matrix.Symmetric {
	m := matrix.New(4, 0, 10)
	m.Set(0, 1, 1)
	m.Set(2, 3, 1)
	return m
}

func normalize(clusters [][]int) [][]int {
	out := make([][]int, len(clusters))
	for i, c := range clusters {
		cc := append([]int(nil), c...)
		sort.Ints(cc)
		out[i] = cc
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func TestPerformClusteringScenario(t *testing.T) {
	m := buildScenario()
	for seed := int64(0); seed < 5; seed++ {
		cfg := Config{K: 2, MaxIter: 50, Runs: 10, Rand: rand.New(rand.NewSource(seed))}
		got := normalize(PerformClustering(m, cfg))
		want := [][]int{{0, 1}, {2, 3}}
		if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 2 {
			t.Fatalf("seed %d: unexpected shape %v", seed, got)
		}
		if (got[0][0] != want[0][0] || got[0][1] != want[0][1]) &&
			(got[0][0] != want[1][0] || got[0][1] != want[1][1]) {
			t.Errorf("seed %d: got %v, want %v (either order)", seed, got, want)
		}
	}
}

func TestDegenerateKGreaterThanN(t *testing.T) {
	m := matrix.New(3, 0, 5)
	clusters := PerformClustering(m, Config{K: 10, Runs: 1, MaxIter: 5})
	if len(clusters) != 3 {
		t.Errorf("expected singleton clusters, got %v", clusters)
	}
}

func TestDegenerateKEqualsOne(t *testing.T) {
	m := matrix.New(4, 0, 5)
	clusters := PerformClustering(m, Config{K: 1, Runs: 1, MaxIter: 5})
	if len(clusters) != 1 || len(clusters[0]) != 4 {
		t.Errorf("expected one cluster of 4, got %v", clusters)
	}
}

func TestDegenerateEmpty(t *testing.T) {
	m := matrix.New(0, 0, 5)
	clusters := PerformClustering(m, Config{K: 2, Runs: 1})
	if len(clusters) != 0 {
		t.Errorf("expected empty clustering, got %v", clusters)
	}
}
