// Package block reconstructs synteny ranges per sequence from a linear path
// through the minimizer graph.
package block

import (
	"sort"

	"github.com/wang-q/hnsm-sub000/graph"
)

// Range is one sequence's contribution to a synteny block.
type Range struct {
	Start, End int
	Strand     bool
	Count      int
}

// Block maps seq_id to its Range within one linear path.
type Block map[uint32]*Range

// occByID is the per-sequence slice of a node's occurrences, used for the
// binary search over contiguous seq_id runs.
func occByID(occs []graph.Occurrence, seqID uint32) []graph.Occurrence {
	lo := sort.Search(len(occs), func(i int) bool { return occs[i].SeqID >= seqID })
	hi := sort.Search(len(occs), func(i int) bool { return occs[i].SeqID > seqID })
	return occs[lo:hi]
}

// Build reconstructs the Block for one linear path (a list of node hashes).
func Build(g *graph.Graph, path []uint64) Block {
	blk := make(Block)
	index := make(map[uint64]int, g.NumNodes())
	for i := 0; i < g.NumNodes(); i++ {
		index[g.NodeHash(i)] = i
	}

	if len(path) == 1 {
		ni := index[path[0]]
		for _, occ := range g.Occurrences(ni) {
			blk[occ.SeqID] = &Range{Start: int(occ.Pos), End: int(occ.Pos), Strand: occ.Strand, Count: 1}
		}
		return blk
	}

	for i := 1; i < len(path); i++ {
		ui, vi := index[path[i-1]], index[path[i]]
		edges := g.OutEdges(ui, vi)
		uOccs := g.Occurrences(ui)
		vOccs := g.Occurrences(vi)

		for _, e := range edges {
			us := occByID(uOccs, e.SeqID)
			vs := occByID(vOccs, e.SeqID)

			var matchU, matchV *graph.Occurrence
		search:
			for a := range us {
				for b := range vs {
					if int(vs[b].Pos)-int(us[a].Pos) == int(e.Distance) {
						matchU, matchV = &us[a], &vs[b]
						break search
					}
				}
			}
			if matchU == nil {
				continue
			}

			r, ok := blk[e.SeqID]
			if !ok {
				r = &Range{Start: int(matchU.Pos), End: int(matchV.Pos), Strand: matchU.Strand}
				blk[e.SeqID] = r
			}
			if int(matchU.Pos) < r.Start {
				r.Start = int(matchU.Pos)
			}
			if int(matchV.Pos) > r.End {
				r.End = int(matchV.Pos)
			}
			r.Count++
		}
	}
	return blk
}
