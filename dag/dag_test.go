package dag

import "testing"

func TestRunMonotoneChain(t *testing.T) {
	anchors := []Anchor{
		{ID: 0, X: 1, Y: 1, Score: 1},
		{ID: 1, X: 5, Y: 6, Score: 1},
		{ID: 2, X: 10, Y: 12, Score: 1},
		{ID: 3, X: 15, Y: 20, Score: 1},
	}
	opt := ChainOpt{
		GapOpen:               -1,
		GapExtension:          -5,
		BpGapSize:             10000,
		MaxDistBetweenMatches: 1 << 30,
		MinAlignmentScore:     0,
	}
	chains := Run(anchors, opt)
	if len(chains) == 0 {
		t.Fatal("expected at least one chain")
	}
	c := chains[0]
	for k := 1; k < len(c.Indices); k++ {
		a, b := anchors[c.Indices[k-1]], anchors[c.Indices[k]]
		if b.X < a.X || b.Y < a.Y {
			t.Fatalf("chain not monotone: %+v then %+v", a, b)
		}
	}
}

func TestRunStopsBelowMinScore(t *testing.T) {
	anchors := []Anchor{{ID: 0, X: 0, Y: 0, Score: -100}}
	opt := ChainOpt{MinAlignmentScore: 0, MaxDistBetweenMatches: 100, BpGapSize: 1}
	if chains := Run(anchors, opt); len(chains) != 0 {
		t.Errorf("expected no chains below MinAlignmentScore, got %v", chains)
	}
}
