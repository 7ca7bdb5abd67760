package hv

import "testing"

func randomSet(seed uint64, n int) map[uint64]struct{} {
	s := make(map[uint64]struct{}, n)
	x := seed
	for len(s) < n {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		s[x] = struct{}{}
	}
	return s
}

func TestEncodeBadDim(t *testing.T) {
	if _, err := Encode(map[uint64]struct{}{1: {}}, 100); err != ErrBadDim {
		t.Fatalf("expected ErrBadDim, got %v", err)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	s := randomSet(42, 1000)
	h1, err := Encode(s, 4096)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Encode(s, 4096)
	if err != nil {
		t.Fatal(err)
	}
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("encoding not deterministic at %d: %d != %d", i, h1[i], h2[i])
		}
	}
}

func TestCardinalityApprox(t *testing.T) {
	const d = 4096
	s := randomSet(7, 2000)
	h, err := Encode(s, d)
	if err != nil {
		t.Fatal(err)
	}
	card := Cardinality(h, d)
	diff := card - len(s)
	if diff < 0 {
		diff = -diff
	}
	if float64(diff)/float64(len(s)) > 0.05 {
		t.Errorf("cardinality %d too far from |S|=%d", card, len(s))
	}
}

func TestDotApproxIntersection(t *testing.T) {
	const d = 4096
	a := randomSet(1, 2000)
	b := randomSet(1, 2000) // same seed => identical set => full overlap
	ha, err := Encode(a, d)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := Encode(b, d)
	if err != nil {
		t.Fatal(err)
	}
	got := Dot(ha, hb) / float32(d)
	want := float32(len(a))
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if float64(diff)/float64(want) > 0.1 {
		t.Errorf("hv_dot/D = %v, want approx %v", got, want)
	}
}
