package algo

import "sort"

type interval struct{ start, end int } // closed interval

// CoverageMask tracks, per sequence, the union of closed intervals already
// placed in a synteny block. The mask only grows across rounds.
type CoverageMask struct {
	spans map[uint32][]interval
}

// NewCoverageMask returns an empty coverage mask.
func NewCoverageMask() *CoverageMask {
	return &CoverageMask{spans: make(map[uint32][]interval)}
}

// Covers reports whether pos falls inside any recorded interval of seqID.
func (m *CoverageMask) Covers(seqID uint32, pos int) bool {
	spans := m.spans[seqID]
	i := sort.Search(len(spans), func(i int) bool { return spans[i].end >= pos })
	return i < len(spans) && spans[i].start <= pos
}

// Add unions [start, end] into seqID's span set, merging overlaps.
func (m *CoverageMask) Add(seqID uint32, start, end int) {
	spans := append(m.spans[seqID], interval{start, end})
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	merged := spans[:0]
	for _, s := range spans {
		if len(merged) > 0 && s.start <= merged[len(merged)-1].end+1 {
			last := &merged[len(merged)-1]
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	m.spans[seqID] = merged
}
