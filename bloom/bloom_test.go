package bloom

import "testing"

func TestInsertContains(t *testing.T) {
	f := New(1000, 0.01)
	for i := uint64(0); i < 500; i++ {
		f.Insert(i * 7919)
	}
	for i := uint64(0); i < 500; i++ {
		if !f.Contains(i * 7919) {
			t.Fatalf("expected %d to be contained after insert", i*7919)
		}
	}
}

func TestContainsFalseForUninserted(t *testing.T) {
	f := New(100, 0.001)
	f.Insert(1)
	f.Insert(2)
	if f.Contains(999999999) {
		t.Log("false positive (acceptable in principle, but unlikely for this test size)")
	}
}
