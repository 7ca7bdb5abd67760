package hash

import (
	"reflect"
	"testing"
)

func TestJumpingMinimizerPositionsIncrease(t *testing.T) {
	seq := []byte("ACGTACGTACGTGGGGCCCCAAAATTTTACGT")
	hits := JumpingMinimizer(FxHash{}, 4, 5, seq)
	for i := 1; i < len(hits); i++ {
		if hits[i].Pos <= hits[i-1].Pos {
			t.Fatalf("positions did not strictly increase: %v", hits)
		}
	}
}

func TestJumpingMinimizerTooShort(t *testing.T) {
	if got := JumpingMinimizer(FxHash{}, 4, 5, []byte("ACG")); got != nil {
		t.Errorf("expected nil for too-short input, got %v", got)
	}
}

func TestSeqSketchCanonicalRevComp(t *testing.T) {
	seq := []byte("ACGTACGTGGGGCCCCAAAATTTTACGTGATCGATCGTAGCTAGT")
	rc := revComp(seq)

	setOf := func(infos []MinimizerInfo) map[uint64]int {
		m := make(map[uint64]int)
		for _, mi := range infos {
			m[mi.Hash]++
		}
		return m
	}

	a := SeqSketch(Fx, 5, 7, 0, seq, SeqSketchOpt{})
	b := SeqSketch(Fx, 5, 7, 0, rc, SeqSketchOpt{})

	if !reflect.DeepEqual(setOf(a), setOf(b)) {
		t.Errorf("canonical sketch not invariant under reverse complement:\n%v\n%v", setOf(a), setOf(b))
	}
}

func TestSeqSketchSoftMaskRejectsLowercase(t *testing.T) {
	seq := []byte("ACGTACGTacgtACGTACGTACGTACGT")
	got := SeqSketch(Fx, 4, 5, 0, seq, SeqSketchOpt{SoftMask: true})
	for _, m := range got {
		for i := 0; i < 5; i++ {
			if seq[int(m.Pos)+i] >= 'a' && seq[int(m.Pos)+i] <= 'z' {
				t.Fatalf("soft-masked window emitted at pos %d", m.Pos)
			}
		}
	}
}

func TestSeqSketchKeepPredicate(t *testing.T) {
	seq := []byte("ACGTACGTGGGGCCCCAAAATTTTACGTGATCGATCGTAGCTAGT")
	all := SeqSketch(Fx, 5, 7, 0, seq, SeqSketchOpt{})
	if len(all) == 0 {
		t.Fatal("expected some minimizers")
	}
	exclude := all[0].Hash
	filtered := SeqSketch(Fx, 5, 7, 0, seq, SeqSketchOpt{Keep: func(h uint64) bool { return h != exclude }})
	for _, m := range filtered {
		if m.Hash == exclude {
			t.Fatalf("excluded hash %d still present", exclude)
		}
	}
}
