package block

import (
	"testing"

	"github.com/wang-q/hnsm-sub000/graph"
	"github.com/wang-q/hnsm-sub000/hash"
)

func TestBuildSingleNodePath(t *testing.T) {
	mins := []hash.MinimizerInfo{
		{Hash: 42, SeqID: 0, Pos: 5, Strand: true},
		{Hash: 42, SeqID: 1, Pos: 7, Strand: false},
	}
	g := graph.New()
	g.AddMinimizers(mins, 10)

	blk := Build(g, []uint64{42})
	if len(blk) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(blk))
	}
	if blk[0].Start != 5 || blk[0].End != 5 {
		t.Errorf("seq0 range = %+v", blk[0])
	}
	if blk[1].Start != 7 || blk[1].End != 7 {
		t.Errorf("seq1 range = %+v", blk[1])
	}
}

func TestBuildMultiNodePath(t *testing.T) {
	mins := []hash.MinimizerInfo{
		{Hash: 10, SeqID: 0, Pos: 0},
		{Hash: 20, SeqID: 0, Pos: 10},
		{Hash: 30, SeqID: 0, Pos: 20},
	}
	g := graph.New()
	g.AddMinimizers(mins, 100)

	blk := Build(g, []uint64{10, 20, 30})
	r, ok := blk[0]
	if !ok {
		t.Fatal("expected seq0 range")
	}
	if r.Start != 0 || r.End != 20 {
		t.Errorf("seq0 range = %+v, want start=0 end=20", r)
	}
	if r.Count != 2 {
		t.Errorf("seq0 count = %d, want 2", r.Count)
	}
}
