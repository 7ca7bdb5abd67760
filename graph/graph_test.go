package graph

import (
	"reflect"
	"testing"

	"github.com/wang-q/hnsm-sub000/hash"
)

func TestLinearPathAfterPrune(t *testing.T) {
	mins := []hash.MinimizerInfo{
		{Hash: 10, SeqID: 0, Pos: 0},
		{Hash: 20, SeqID: 0, Pos: 10},
		{Hash: 30, SeqID: 0, Pos: 20},
		{Hash: 40, SeqID: 0, Pos: 30},
		{Hash: 10, SeqID: 1, Pos: 0},
		{Hash: 20, SeqID: 1, Pos: 10},
		{Hash: 30, SeqID: 1, Pos: 20},
		{Hash: 50, SeqID: 1, Pos: 30},
	}

	g := New()
	g.AddMinimizers(mins, 100)
	g.PruneLowWeightEdges(2)
	g.TransitiveReduction(50)

	paths := g.GetLinearPaths()
	if len(paths) != 1 {
		t.Fatalf("expected 1 linear path, got %d: %v", len(paths), paths)
	}
	want := []uint64{10, 20, 30}
	if !reflect.DeepEqual(paths[0], want) {
		t.Errorf("path = %v, want %v", paths[0], want)
	}
}

func TestAddMinimizersEdgeWeight(t *testing.T) {
	mins := []hash.MinimizerInfo{
		{Hash: 1, SeqID: 0, Pos: 0},
		{Hash: 2, SeqID: 0, Pos: 5},
	}
	g := New()
	g.AddMinimizers(mins, 10)
	u, v := g.index[1], g.index[2]
	if len(g.OutEdges(u, v)) != 1 {
		t.Errorf("expected one parallel edge")
	}
}

func TestPruneRemovesLowWeight(t *testing.T) {
	mins := []hash.MinimizerInfo{
		{Hash: 1, SeqID: 0, Pos: 0},
		{Hash: 2, SeqID: 0, Pos: 1},
	}
	g := New()
	g.AddMinimizers(mins, 10)
	g.PruneLowWeightEdges(2)
	u := g.index[1]
	if len(g.OutNeighbors(u)) != 0 {
		t.Errorf("expected edge pruned, still has neighbors %v", g.OutNeighbors(u))
	}
}
