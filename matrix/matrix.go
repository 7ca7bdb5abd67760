// Package matrix implements the symmetric sparse score matrix: a mapping
// from canonical unordered-pair keys to scores, with configurable defaults
// for the diagonal and for absent off-diagonal pairs.
package matrix

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
)

// key is the canonical (min, max) index pair.
type key struct{ a, b int }

func canonicalKey(i, j int) key {
	if i <= j {
		return key{i, j}
	}
	return key{j, i}
}

// Symmetric is a sparse N*N symmetric score matrix.
type Symmetric struct {
	n       int
	same    float64
	missing float64
	m       map[key]float64
}

// New allocates an empty Symmetric matrix over n indices.
func New(n int, same, missing float64) *Symmetric {
	return &Symmetric{n: n, same: same, missing: missing, m: make(map[key]float64)}
}

// Size returns N.
func (s *Symmetric) Size() int { return s.n }

// Set stores v under the canonical key (min(i,j), max(i,j)).
func (s *Symmetric) Set(i, j int, v float64) {
	s.m[canonicalKey(i, j)] = v
}

// Get returns the stored value for (i, j), or the same/missing default.
func (s *Symmetric) Get(i, j int) float64 {
	if v, ok := s.m[canonicalKey(i, j)]; ok {
		return v
	}
	if i == j {
		return s.same
	}
	return s.missing
}

// Entry is one explicitly stored (i, j, score) triple.
type Entry struct {
	I, J  int
	Score float64
}

// Entries returns every explicitly stored pair, in no particular order.
func (s *Symmetric) Entries() []Entry {
	out := make([]Entry, 0, len(s.m))
	for k, v := range s.m {
		out = append(out, Entry{I: k.a, J: k.b, Score: v})
	}
	return out
}

// NameIndex assigns insertion-ordered integer indices to opaque names.
type NameIndex struct {
	names []string
	index map[string]int
}

// NewNameIndex returns an empty insertion-ordered name index.
func NewNameIndex() *NameIndex {
	return &NameIndex{index: make(map[string]int)}
}

// IndexOf returns the index of name, assigning the next rank on first sight.
func (ni *NameIndex) IndexOf(name string) int {
	if i, ok := ni.index[name]; ok {
		return i
	}
	i := len(ni.names)
	ni.names = append(ni.names, name)
	ni.index[name] = i
	return i
}

// Names returns the insertion-ordered name list.
func (ni *NameIndex) Names() []string { return ni.names }

// FromPairScores reads a three-column name1/name2/score TSV and builds a
// Symmetric matrix plus the insertion-ordered name list. Malformed lines
// (wrong field count, unparseable score) are skipped silently.
func FromPairScores(file string, same, missing float64) (*Symmetric, []string, error) {
	ni := NewNameIndex()
	type pair struct {
		i, j  int
		score float64
	}
	var pairs []pair

	reader, err := breader.NewDefaultBufferedReader(file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "matrix: opening %s", file)
	}
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, nil, errors.Wrap(chunk.Err, "matrix: reading pair-score file")
		}
		for _, data := range chunk.Data {
			line := data.(string)
			if line == "" {
				continue
			}
			fields := strings.Split(line, "\t")
			if len(fields) != 3 {
				continue
			}
			score, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				continue
			}
			i := ni.IndexOf(fields[0])
			j := ni.IndexOf(fields[1])
			pairs = append(pairs, pair{i, j, score})
		}
	}

	m := New(len(ni.names), same, missing)
	for _, p := range pairs {
		m.Set(p.i, p.j, p.score)
	}
	return m, ni.names, nil
}
