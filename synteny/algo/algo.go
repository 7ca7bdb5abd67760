// Package algo drives the iterative synteny refinement loop: per round,
// count minimizer frequency (bloom-filtered to suppress singletons), build
// a minimizer graph filtered by frequency and coverage, prune, transitively
// reduce, extract linear paths, reconstruct blocks, and grow the coverage
// mask so later rounds see strictly less input.
package algo

import (
	"github.com/wang-q/hnsm-sub000/block"
	"github.com/wang-q/hnsm-sub000/bloom"
	"github.com/wang-q/hnsm-sub000/graph"
	"github.com/wang-q/hnsm-sub000/hash"
)

// Sequence is one named input sequence.
type Sequence struct {
	SeqID uint32
	Bytes []byte
}

// Config holds the synteny driver's tunables.
type Config struct {
	K          int
	Rounds     []int // window sizes, coerced odd
	MinWeight  int
	MaxFreq    int
	BlockSize  int
	ChainGap   int
	SoftMask   bool
	HasherKind hash.HasherKind
}

// Result is one emitted synteny block; Round holds the (odd-coerced) window
// size of the round that found it.
type Result struct {
	ID    int
	Round int
	Block block.Block
}

// counter implements the bloom-filtered singleton-suppressing frequency
// counter: a hash's first sighting only marks the bloom filter; its second
// sighting opens a real counter at 2; later sightings increment it.
type counter struct {
	seen   *bloom.Filter
	counts map[uint64]int
}

func newCounter(expected int) *counter {
	n := expected
	if n < 1 {
		n = 1
	}
	return &counter{seen: bloom.New(n, 0.01), counts: make(map[uint64]int)}
}

func (c *counter) observe(h uint64) {
	if !c.seen.Contains(h) {
		c.seen.Insert(h)
		return
	}
	if v, ok := c.counts[h]; ok {
		c.counts[h] = v + 1
	} else {
		c.counts[h] = 2
	}
}

func coerceOdd(w int) int {
	if w%2 == 0 {
		return w + 1
	}
	return w
}

// Run executes every configured round over seqs and returns every emitted
// block, in round order.
func Run(seqs []Sequence, cfg Config) []Result {
	mask := NewCoverageMask()
	var results []Result
	nextID := 0

	for _, rawW := range cfg.Rounds {
		w := coerceOdd(rawW)

		// Pass 1: count.
		cnt := newCounter(totalLen(seqs))
		for _, s := range seqs {
			mins := hash.SeqSketch(cfg.HasherKind, w, cfg.K, s.SeqID, s.Bytes, hash.SeqSketchOpt{SoftMask: cfg.SoftMask})
			for _, m := range mins {
				if mask.Covers(s.SeqID, int(m.Pos)) {
					continue
				}
				cnt.observe(m.Hash)
			}
		}

		// Pass 2: graph.
		keep := func(h uint64) bool {
			v, ok := cnt.counts[h]
			return ok && v <= cfg.MaxFreq
		}
		g := graph.New()
		for _, s := range seqs {
			mins := hash.SeqSketch(cfg.HasherKind, w, cfg.K, s.SeqID, s.Bytes, hash.SeqSketchOpt{SoftMask: cfg.SoftMask, Keep: keep})
			filtered := mins[:0]
			for _, m := range mins {
				if mask.Covers(s.SeqID, int(m.Pos)) {
					continue
				}
				filtered = append(filtered, m)
			}
			g.AddMinimizers(filtered, cfg.ChainGap)
		}

		g.PruneLowWeightEdges(cfg.MinWeight)
		g.TransitiveReduction(50)
		paths := g.GetLinearPaths()

		for _, path := range paths {
			blk := block.Build(g, path)
			if maxRangeLen(blk) < cfg.BlockSize {
				continue
			}
			results = append(results, Result{ID: nextID, Round: w, Block: blk})
			nextID++
			for seqID, r := range blk {
				mask.Add(seqID, r.Start, r.End)
			}
		}
	}

	return results
}

func totalLen(seqs []Sequence) int {
	n := 0
	for _, s := range seqs {
		n += len(s.Bytes)
	}
	return n
}

func maxRangeLen(blk block.Block) int {
	max := 0
	for _, r := range blk {
		l := r.End - r.Start
		if l > max {
			max = l
		}
	}
	return max
}
