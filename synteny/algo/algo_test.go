package algo

import (
	"testing"

	"github.com/wang-q/hnsm-sub000/hash"
)

func TestRunEndToEnd(t *testing.T) {
	seq := []byte("ACGTACGGTTCAGTCAGATC") // length 20
	seqs := []Sequence{
		{SeqID: 0, Bytes: append([]byte(nil), seq...)},
		{SeqID: 1, Bytes: append([]byte(nil), seq...)},
	}
	cfg := Config{
		K:          5,
		Rounds:     []int{5},
		MinWeight:  2,
		MaxFreq:    1000,
		BlockSize:  0,
		ChainGap:   20,
		HasherKind: hash.Fx,
	}
	results := Run(seqs, cfg)
	if len(results) == 0 {
		t.Fatal("expected at least one synteny block")
	}
	found := false
	for _, r := range results {
		_, a := r.Block[0]
		_, b := r.Block[1]
		if a && b {
			found = true
		}
	}
	if !found {
		t.Errorf("expected some block covering both sequences, got %+v", results)
	}
}

func TestCoverageMaskGrows(t *testing.T) {
	m := NewCoverageMask()
	if m.Covers(0, 5) {
		t.Fatal("empty mask should cover nothing")
	}
	m.Add(0, 3, 7)
	if !m.Covers(0, 5) {
		t.Error("expected pos 5 covered after Add(3,7)")
	}
	if m.Covers(0, 8) {
		t.Error("pos 8 should not be covered")
	}
	m.Add(0, 8, 10)
	if !m.Covers(0, 9) {
		t.Error("expected merged interval to cover pos 9")
	}
}
