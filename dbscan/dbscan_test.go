package dbscan

import (
	"testing"

	"github.com/wang-q/hnsm-sub000/matrix"
)

func TestPerformClusteringScenario(t *testing.T) {
	m := matrix.New(5, 0, 100)
	m.Set(0, 1, 1)
	m.Set(2, 3, 1)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			if (i == 0 && j == 1) || (i == 2 && j == 3) {
				continue
			}
			m.Set(i, j, 9)
		}
	}

	labels := PerformClustering(m, Config{Eps: 1, MinPoints: 2})
	want := []*int{ip(0), ip(0), ip(1), ip(1), nil}
	if len(labels) != len(want) {
		t.Fatalf("length mismatch")
	}
	for i := range labels {
		switch {
		case want[i] == nil:
			if labels[i] != nil {
				t.Errorf("point %d: got %v, want noise", i, *labels[i])
			}
		case labels[i] == nil:
			t.Errorf("point %d: got noise, want %d", i, *want[i])
		case *labels[i] != *want[i]:
			t.Errorf("point %d: got %d, want %d", i, *labels[i], *want[i])
		}
	}
}

func ip(v int) *int { return &v }

func TestResultsPairNoiseSelfPair(t *testing.T) {
	m := matrix.New(3, 0, 100)
	labels := []*int{ip(0), ip(0), nil}
	pairs := ResultsPair(m, labels)
	found := false
	for _, p := range pairs {
		if p[0] == 2 && p[1] == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected (2,2) self-pair for noise point, got %v", pairs)
	}
}
