package matrix

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSymmetric(t *testing.T) {
	m := New(5, 0, 100)
	m.Set(0, 1, 1)
	m.Set(2, 3, 1)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if m.Get(i, j) != m.Get(j, i) {
				t.Fatalf("Get(%d,%d) != Get(%d,%d)", i, j, j, i)
			}
		}
	}
	if m.Get(4, 4) != 0 {
		t.Errorf("Get(4,4) = %v, want same default 0", m.Get(4, 4))
	}
	if m.Get(0, 2) != 100 {
		t.Errorf("Get(0,2) = %v, want missing default 100", m.Get(0, 2))
	}
}

func TestFromPairScores(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pairs.tsv")
	content := "a\tb\t1.5\nb\tc\t2\nbroken line\nc\ta\t0.5\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	m, names, err := FromPairScores(file, 0, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("unexpected name order: %v", names)
	}
	if m.Get(0, 1) != 1.5 {
		t.Errorf("a-b score = %v, want 1.5", m.Get(0, 1))
	}
	if m.Get(2, 0) != 0.5 {
		t.Errorf("c-a score = %v, want 0.5", m.Get(2, 0))
	}
}
