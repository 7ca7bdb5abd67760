// Package graph implements the minimizer overlap graph: nodes carry a
// sorted occurrence list, edges are parallel per-sequence observations,
// and the graph supports weight pruning, bounded transitive reduction and
// linear-path extraction feeding synteny block reconstruction.
package graph

import (
	"sort"

	"github.com/wang-q/hnsm-sub000/hash"
)

// Occurrence is one sighting of a node's minimizer within a sequence.
type Occurrence struct {
	SeqID  uint32
	Pos    uint32
	Strand bool
}

// EdgeAttr is one parallel-edge observation: the sequence it came from and
// the position distance between the two minimizers.
type EdgeAttr struct {
	SeqID    uint32
	Distance uint32
}

type node struct {
	hash        uint64
	occurrences []Occurrence
	out         map[int][]EdgeAttr
	in          map[int][]EdgeAttr
}

// Graph is a directed multigraph of minimizer nodes.
type Graph struct {
	nodes []*node
	index map[uint64]int
}

// New returns an empty minimizer graph.
func New() *Graph {
	return &Graph{index: make(map[uint64]int)}
}

// NumNodes returns the number of distinct minimizer nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NodeHash returns the minimizer hash of node i.
func (g *Graph) NodeHash(i int) uint64 { return g.nodes[i].hash }

// Occurrences returns the sorted occurrence list of node i.
func (g *Graph) Occurrences(i int) []Occurrence { return g.nodes[i].occurrences }

func (g *Graph) getOrCreate(h uint64) int {
	if i, ok := g.index[h]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, &node{hash: h, out: make(map[int][]EdgeAttr), in: make(map[int][]EdgeAttr)})
	g.index[h] = i
	return i
}

// AddMinimizers consumes minimizers already ordered by (seq_id, pos): for
// every consecutive pair on the same sequence within chainGap it appends a
// parallel edge, and it appends each occurrence to its node.
func (g *Graph) AddMinimizers(mins []hash.MinimizerInfo, chainGap int) {
	for _, m := range mins {
		i := g.getOrCreate(m.Hash)
		g.nodes[i].occurrences = append(g.nodes[i].occurrences, Occurrence{SeqID: m.SeqID, Pos: m.Pos, Strand: m.Strand})
	}

	for idx := 1; idx < len(mins); idx++ {
		u, v := mins[idx-1], mins[idx]
		if u.SeqID != v.SeqID {
			continue
		}
		d := int(v.Pos) - int(u.Pos)
		if d < 0 || d > chainGap {
			continue
		}
		ui, vi := g.index[u.Hash], g.index[v.Hash]
		g.nodes[ui].out[vi] = append(g.nodes[ui].out[vi], EdgeAttr{SeqID: u.SeqID, Distance: uint32(d)})
		g.nodes[vi].in[ui] = append(g.nodes[vi].in[ui], EdgeAttr{SeqID: u.SeqID, Distance: uint32(d)})
	}

	for _, n := range g.nodes {
		sort.Slice(n.occurrences, func(a, b int) bool {
			if n.occurrences[a].SeqID != n.occurrences[b].SeqID {
				return n.occurrences[a].SeqID < n.occurrences[b].SeqID
			}
			return n.occurrences[a].Pos < n.occurrences[b].Pos
		})
	}
}

// OutEdges returns the parallel edges from node u to node v.
func (g *Graph) OutEdges(u, v int) []EdgeAttr { return g.nodes[u].out[v] }

// OutNeighbors returns the distinct targets of node u's outgoing edges.
func (g *Graph) OutNeighbors(u int) []int {
	out := make([]int, 0, len(g.nodes[u].out))
	for v := range g.nodes[u].out {
		out = append(out, v)
	}
	return out
}

// InNeighbors returns the distinct sources of node u's incoming edges.
func (g *Graph) InNeighbors(u int) []int {
	out := make([]int, 0, len(g.nodes[u].in))
	for v := range g.nodes[u].in {
		out = append(out, v)
	}
	return out
}

// PruneLowWeightEdges removes every parallel-edge bundle whose count is
// below minWeight.
func (g *Graph) PruneLowWeightEdges(minWeight int) {
	for u, n := range g.nodes {
		for v, edges := range n.out {
			if len(edges) < minWeight {
				delete(n.out, v)
				delete(g.nodes[v].in, u)
			}
		}
	}
}

// TransitiveReduction removes an edge u->v whenever a path u->w->...->v
// exists through another neighbor w, bounded at BFS depth maxDepth.
func (g *Graph) TransitiveReduction(maxDepth int) {
	for u, n := range g.nodes {
		if len(n.out) < 2 {
			continue
		}
		targets := g.OutNeighbors(u)
		removed := make(map[int]bool)
		for _, v := range targets {
			for _, w := range targets {
				if w == v || removed[w] {
					continue
				}
				if g.reachableWithin(w, v, maxDepth-1, u) {
					removed[v] = true
					break
				}
			}
		}
		for v := range removed {
			delete(n.out, v)
			delete(g.nodes[v].in, u)
		}
	}
}

// reachableWithin reports whether target is reachable from start within
// depth hops, without ever stepping through avoid.
func (g *Graph) reachableWithin(start, target, depth, avoid int) bool {
	if start == target {
		return true
	}
	if depth <= 0 {
		return false
	}
	visited := map[int]bool{start: true, avoid: true}
	frontier := []int{start}
	for d := 0; d < depth && len(frontier) > 0; d++ {
		var next []int
		for _, u := range frontier {
			for v := range g.nodes[u].out {
				if v == target {
					return true
				}
				if !visited[v] {
					visited[v] = true
					next = append(next, v)
				}
			}
		}
		frontier = next
	}
	return false
}
