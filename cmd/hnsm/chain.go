// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package hnsm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
	"github.com/spf13/cobra"
	"github.com/wang-q/hnsm-sub000/dag"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Chain pairwise anchors by DAGchainer-style dynamic programming",
	Long: `Chain pairwise anchors by DAGchainer-style dynamic programming

Reads a four-column TSV (id, x, y, score), sorts by (x, y) and repeatedly
extracts the best-scoring monotone chain under an affine gap penalty until
none reaches --min-score. Output is a "# Chain_ID..." header line, then one
row per chained anchor: chain_id\tanchor_id\tx\ty\tpath_score\tscore, where
score is the chain's total; chains in descending order of total score.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gapOpen := getFlagFloat64(cmd, "gap-open")
		gapExt := getFlagFloat64(cmd, "gap-extension")
		bpGapSize := getFlagPositiveInt(cmd, "bp-gap-size")
		maxDist := getFlagPositiveInt(cmd, "max-dist")
		minScore := getFlagFloat64(cmd, "min-score")
		outFile := getFlagString(cmd, "out-file")

		checkInputFiles(args)
		anchors, err := loadAnchors(args[0])
		checkError(err)

		maxMatch := 0.0
		for _, a := range anchors {
			if a.Score > maxMatch {
				maxMatch = a.Score
			}
		}

		sort.Slice(anchors, func(i, j int) bool {
			if anchors[i].X != anchors[j].X {
				return anchors[i].X < anchors[j].X
			}
			return anchors[i].Y < anchors[j].Y
		})

		chains := dag.Run(anchors, dag.ChainOpt{
			GapOpen:               gapOpen,
			GapExtension:          gapExt,
			BpGapSize:             bpGapSize,
			MaxMatchScore:         maxMatch,
			MaxDistBetweenMatches: maxDist,
			MinAlignmentScore:     minScore,
		})

		outfh, gw, w2, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"), 6)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w2.Close()
		}()

		fmt.Fprintln(outfh, "# Chain_ID\tAnchor_ID\tX\tY\tPath_Score\tScore")
		for ci, c := range chains {
			for step, idx := range c.Indices {
				a := anchors[idx]
				fmt.Fprintf(outfh, "%d\t%d\t%d\t%d\t%.4f\t%.4f\n", ci, a.ID, a.X, a.Y, c.PathScores[step], c.Score)
			}
		}
	},
}

func init() {
	chainCmd.Flags().Float64P("gap-open", "", -1, "gap-open penalty, typically negative")
	chainCmd.Flags().Float64P("gap-extension", "", -5, "gap-extension penalty per unit, typically negative")
	chainCmd.Flags().IntP("bp-gap-size", "", 10000, "base-pair unit for the gap-count formula")
	chainCmd.Flags().IntP("max-dist", "", 1000000, "maximum coordinate distance between chained anchors")
	chainCmd.Flags().Float64P("min-score", "", 0, "minimum total chain score to report")
	chainCmd.Flags().StringP("out-file", "o", "-", "out file, \"-\" for stdout")
}

// loadAnchors reads a four-column (id, x, y, score) TSV, skipping malformed
// lines (wrong field count, unparseable numbers).
func loadAnchors(file string) ([]dag.Anchor, error) {
	reader, err := breader.NewDefaultBufferedReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "chain: opening %s", file)
	}
	var anchors []dag.Anchor
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, errors.Wrap(chunk.Err, "chain: reading anchor file")
		}
		for _, data := range chunk.Data {
			line := data.(string)
			if line == "" {
				continue
			}
			fields := strings.Split(line, "\t")
			if len(fields) != 4 {
				continue
			}
			id, err1 := strconv.Atoi(fields[0])
			x, err2 := strconv.Atoi(fields[1])
			y, err3 := strconv.Atoi(fields[2])
			score, err4 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				continue
			}
			anchors = append(anchors, dag.Anchor{ID: id, X: x, Y: y, Score: score})
		}
	}
	return anchors, nil
}
