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
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wang-q/hnsm-sub000/synteny/algo"
)

var syntCmd = &cobra.Command{
	Use:   "synt",
	Short: "Synteny discovery over a minimizer overlap graph",
}

var syntRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Find synteny blocks by iterative minimizer-graph refinement",
	Long: `Find synteny blocks by iterative minimizer-graph refinement

Each configured window size is run as one round: sketch minimizers
(masking positions already covered by an earlier round), build the
overlap graph, prune low-weight edges, transitively reduce, extract
linear paths, and reconstruct a block per path. Output is a TSV with a
"# Block_ID\tRange\tCount\tRound" header; each block's rows carry a
global strand flip so the path's first entry is always positive.
`,
	Run: func(cmd *cobra.Command, args []string) {
		k := getFlagPositiveInt(cmd, "kmer")
		windows := getFlagString(cmd, "windows")
		minWeight := getFlagPositiveInt(cmd, "min-weight")
		maxFreq := getFlagPositiveInt(cmd, "max-freq")
		blockSize := getFlagInt(cmd, "block-size")
		chainGap := getFlagPositiveInt(cmd, "chain-gap")
		softMask := getFlagBool(cmd, "soft-mask")
		outFile := getFlagString(cmd, "out-file")
		kind := parseHasherKind(getFlagString(cmd, "hasher"))

		var rounds []int
		for _, f := range strings.Split(windows, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.Atoi(f)
			checkError(err)
			rounds = append(rounds, v)
		}

		checkInputFiles(args)
		seqs, err := loadSequences(args, false)
		checkError(err)

		names := make([]string, len(seqs))
		algoSeqs := make([]algo.Sequence, len(seqs))
		for i, s := range seqs {
			names[i] = s.Name
			algoSeqs[i] = algo.Sequence{SeqID: uint32(i), Bytes: s.Seq}
		}

		results := algo.Run(algoSeqs, algo.Config{
			K:          k,
			Rounds:     rounds,
			MinWeight:  minWeight,
			MaxFreq:    maxFreq,
			BlockSize:  blockSize,
			ChainGap:   chainGap,
			SoftMask:   softMask,
			HasherKind: kind,
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

		fmt.Fprintln(outfh, "# Block_ID\tRange\tCount\tRound")
		for _, res := range results {
			writeBlock(outfh, res, names)
		}
	},
}

func init() {
	syntRunCmd.Flags().IntP("kmer", "k", 15, "k-mer size")
	syntRunCmd.Flags().StringP("windows", "w", "5,11,21", "comma-separated window sizes, one refinement round each")
	syntRunCmd.Flags().IntP("min-weight", "", 2, "minimum edge weight to keep")
	syntRunCmd.Flags().IntP("max-freq", "", 1, "maximum minimizer frequency to admit into the graph")
	syntRunCmd.Flags().IntP("block-size", "", 0, "minimum block span to report, 0 for no minimum")
	syntRunCmd.Flags().IntP("chain-gap", "", 50, "maximum minimizer distance to chain as an edge")
	syntRunCmd.Flags().BoolP("soft-mask", "", false, "reject minimizers touching lowercase-masked bases")
	syntRunCmd.Flags().StringP("hasher", "", "fx", "hashing kernel: fx|murmur|rapid|mod|nt")
	syntRunCmd.Flags().StringP("out-file", "o", "-", "out file, \"-\" for stdout")

	syntCmd.AddCommand(syntRunCmd)
}

// writeBlock emits one block's rows, applying the first-entry strand flip.
func writeBlock(w io.Writer, res algo.Result, names []string) {
	seqIDs := make([]uint32, 0, len(res.Block))
	for id := range res.Block {
		seqIDs = append(seqIDs, id)
	}
	sort.Slice(seqIDs, func(i, j int) bool { return seqIDs[i] < seqIDs[j] })
	if len(seqIDs) == 0 {
		return
	}

	flip := !res.Block[seqIDs[0]].Strand
	for _, id := range seqIDs {
		r := res.Block[id]
		strand := r.Strand
		if flip {
			strand = !strand
		}
		sign := "+"
		if !strand {
			sign = "-"
		}
		fmt.Fprintf(w, "%d\t%s(%s):%d-%d\t%d\t%d\n", res.ID, names[id], sign, r.Start, r.End, r.Count, res.Round)
	}
}
