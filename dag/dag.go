// Package dag implements DAGchainer-style anchor chaining: a dynamic
// program over anchors pre-sorted by (x, y) with an affine gap cost,
// repeated until no chain reaches the minimum alignment score.
package dag

import "math"

// Anchor is a single pairwise match between two coordinate systems.
type Anchor struct {
	ID    int
	X, Y  int
	Score float64
}

// ChainOpt configures the chaining dynamic program. Gap parameters are
// penalties and are typically negative.
type ChainOpt struct {
	GapOpen               float64
	GapExtension          float64
	BpGapSize             int
	MaxMatchScore         float64
	MaxDistBetweenMatches int
	MinAlignmentScore     float64
}

// Chain is one reconstructed chain: the anchor indices in chain order (into
// the input slice) with their running path scores, plus the total score.
type Chain struct {
	Indices    []int
	PathScores []float64
	Score      float64
}

// Run chains anchors (pre-sorted by (X, Y)) under opt, repeatedly extracting
// the best-scoring remaining chain until none reaches MinAlignmentScore.
// Chains are returned in descending order of score.
func Run(anchors []Anchor, opt ChainOpt) []Chain {
	n := len(anchors)
	used := make([]bool, n)
	var chains []Chain

	for {
		path := make([]float64, n)
		from := make([]int, n)
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			path[j] = anchors[j].Score
			from[j] = -1
		}

		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			for i := j - 1; i >= 0; i-- {
				if used[i] {
					continue
				}
				dx := anchors[j].X - anchors[i].X - 1
				dy := anchors[j].Y - anchors[i].Y - 1
				if dx < 0 || dy < 0 {
					continue
				}
				dxOver := dx > opt.MaxDistBetweenMatches
				dyOver := dy > opt.MaxDistBetweenMatches
				if dxOver && dyOver {
					break
				}
				if dxOver || dyOver {
					continue
				}

				absDiff := dx - dy
				if absDiff < 0 {
					absDiff = -absDiff
				}
				numGaps := int(math.Floor(float64(dx+dy+absDiff)/float64(2*opt.BpGapSize) + 0.5))

				s := path[i] + anchors[j].Score
				if numGaps > 0 {
					s += opt.GapOpen + float64(numGaps)*opt.GapExtension
				}
				if s > path[j] {
					path[j] = s
					from[j] = i
				}
			}
		}

		best := -1
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			if best == -1 || path[j] > path[best] {
				best = j
			}
		}
		if best == -1 || path[best] < opt.MinAlignmentScore {
			break
		}

		var indices []int
		var scores []float64
		for cur := best; cur != -1; cur = from[cur] {
			indices = append(indices, cur)
			scores = append(scores, path[cur])
			used[cur] = true
		}
		reverseInts(indices)
		reverseFloats(scores)
		chains = append(chains, Chain{Indices: indices, PathScores: scores, Score: path[best]})
	}

	return chains
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
