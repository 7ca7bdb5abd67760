// Package mcl implements Markov clustering over a sparse column-stochastic
// flow matrix: iterated expansion (matrix squaring), inflation (power plus
// column renormalization) and pruning until convergence, followed by
// strongly-connected-component cluster extraction.
package mcl

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// entry is one non-zero (row, value) pair within a column.
type entry struct {
	row int
	val float64
}

// sparseMat is a column-major sparse matrix: columns[j] holds the sorted
// (row, value) entries of column j.
type sparseMat struct {
	n       int
	columns [][]entry
}

func newSparseMat(n int) *sparseMat {
	return &sparseMat{n: n, columns: make([][]entry, n)}
}

func (m *sparseMat) set(row, col int, v float64) {
	m.columns[col] = append(m.columns[col], entry{row, v})
}

func (m *sparseMat) normalizeColumns() {
	for j, col := range m.columns {
		var sum float64
		for _, e := range col {
			sum += e.val
		}
		if sum == 0 {
			continue
		}
		for i := range col {
			col[i].val /= sum
		}
		m.columns[j] = col
	}
}

func (m *sparseMat) sortColumns() {
	for _, col := range m.columns {
		sort.Slice(col, func(a, b int) bool { return col[a].row < col[b].row })
	}
}

// Config holds the MCL parameters.
type Config struct {
	Inflation float64
	PruneLimit float64
	MaxIter   int
}

// Edge is one undirected/self-loop similarity edge used to seed the flow
// matrix.
type Edge struct {
	I, J   int
	Weight float64
}

// PerformClustering runs MCL to convergence (or MaxIter) over n nodes and
// the given edges (both directions and self loops should be supplied as
// needed by the caller), then extracts clusters as the strongly connected
// components of the final flow graph.
func PerformClustering(n int, edges []Edge, cfg Config) [][]int {
	if n == 0 {
		return nil
	}
	if cfg.PruneLimit <= 0 {
		cfg.PruneLimit = 1e-5
	}
	if cfg.Inflation <= 0 {
		cfg.Inflation = 2.0
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 100
	}

	m := newSparseMat(n)
	for _, e := range edges {
		m.set(e.I, e.J, e.Weight)
	}
	m.normalizeColumns()
	m.sortColumns()

	for iter := 0; iter < cfg.MaxIter; iter++ {
		next := expand(m)
		inflate(next, cfg.Inflation)
		prune(next, cfg.PruneLimit)
		next.sortColumns()
		if converged(m, next) {
			m = next
			break
		}
		m = next
	}

	return extractClusters(m)
}

// expand computes M := M*M by column-by-column sparse accumulation.
func expand(m *sparseMat) *sparseMat {
	out := newSparseMat(m.n)
	for j := 0; j < m.n; j++ {
		acc := make(map[int]float64)
		for _, e := range m.columns[j] {
			k := e.row
			for _, e2 := range m.columns[k] {
				acc[e2.row] += e2.val * e.val
			}
		}
		col := make([]entry, 0, len(acc))
		for row, v := range acc {
			col = append(col, entry{row, v})
		}
		out.columns[j] = col
	}
	return out
}

// inflate raises every entry to the inflation power, then renormalizes each
// column to sum to 1.
func inflate(m *sparseMat, inflation float64) {
	for j, col := range m.columns {
		var sum float64
		for i := range col {
			col[i].val = math.Pow(col[i].val, inflation)
			sum += col[i].val
		}
		if sum == 0 {
			continue
		}
		for i := range col {
			col[i].val /= sum
		}
		m.columns[j] = col
	}
}

// prune drops entries below limit.
func prune(m *sparseMat, limit float64) {
	for j, col := range m.columns {
		kept := col[:0]
		for _, e := range col {
			if e.val >= limit {
				kept = append(kept, e)
			}
		}
		m.columns[j] = kept
	}
}

// converged reports whether a and b have the same sparse structure and
// values within 1e-5.
func converged(a, b *sparseMat) bool {
	const tol = 1e-5
	if a.n != b.n {
		return false
	}
	for j := 0; j < a.n; j++ {
		ca, cb := a.columns[j], b.columns[j]
		if len(ca) != len(cb) {
			return false
		}
		for i := range ca {
			if ca[i].row != cb[i].row {
				return false
			}
			if math.Abs(ca[i].val-cb[i].val) > tol {
				return false
			}
		}
	}
	return true
}

// extractClusters interprets the non-zero entries of m as directed edges
// row->col and returns the strongly connected components (attractors plus
// their attracted rows) as clusters of point indices.
func extractClusters(m *sparseMat) [][]int {
	g := simple.NewDirectedGraph()
	for i := 0; i < m.n; i++ {
		g.AddNode(simple.Node(i))
	}
	for col, entries := range m.columns {
		for _, e := range entries {
			if e.row == col {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(e.row), simple.Node(col)))
		}
	}

	sccs := topo.TarjanSCC(g)
	clusters := make([][]int, 0, len(sccs))
	for _, scc := range sccs {
		cl := make([]int, 0, len(scc))
		for _, node := range scc {
			cl = append(cl, int(node.ID()))
		}
		sort.Ints(cl)
		clusters = append(clusters, cl)
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i][0] < clusters[j][0] })
	return clusters
}
