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
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wang-q/hnsm-sub000/hv"
)

var hvCmd = &cobra.Command{
	Use:   "hv",
	Short: "Encode minimizer sets as hypervectors and report pairwise cardinality/dot",
	Long: `Encode minimizer sets as hypervectors and report pairwise cardinality/dot

Each input file's records are merged into one minimizer set, encoded into a
D-dimensional hypervector; the report mirrors "dist --merge" with total
replaced by the hypervector-estimated cardinality.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		k := getFlagPositiveInt(cmd, "kmer")
		w := getFlagPositiveInt(cmd, "window")
		d := getFlagPositiveInt(cmd, "dim")
		outFile := getFlagString(cmd, "out-file")
		kind := parseHasherKind(getFlagString(cmd, "hasher"))

		checkInputFiles(args)
		seqs, err := loadSequences(args, false)
		checkError(err)

		entries := buildEntries(seqs, true, w, k, kind)

		type hvEntry struct {
			Name string
			H    []int32
			Card int
		}
		hvs := make([]hvEntry, len(entries))
		for i, e := range entries {
			h, err := hv.Encode(e.Set, d)
			checkError(err)
			hvs[i] = hvEntry{Name: e.Name, H: h, Card: hv.Cardinality(h, d)}
		}

		outfh, gw, w2, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"), 6)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w2.Close()
		}()

		for i := 0; i < len(hvs); i++ {
			for j := i + 1; j < len(hvs); j++ {
				inter := float64(hv.Dot(hvs[i].H, hvs[j].H)) / float64(d)
				union := float64(hvs[i].Card+hvs[j].Card) - inter
				jac := 0.0
				if union > 0 {
					jac = inter / union
				}
				cont := 0.0
				if hvs[i].Card > 0 {
					cont = inter / float64(hvs[i].Card)
				}
				fmt.Fprintf(outfh, "%s\t%s\t%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
					hvs[i].Name, hvs[j].Name, hvs[i].Card, hvs[j].Card, inter, union, mashDistance(jac, k), jac, cont)
			}
		}
	},
}

func init() {
	hvCmd.Flags().IntP("kmer", "k", 21, "k-mer size")
	hvCmd.Flags().IntP("window", "w", 1, "minimizer window size")
	hvCmd.Flags().IntP("dim", "d", 4096, "hypervector dimension, must be a multiple of 32")
	hvCmd.Flags().StringP("hasher", "", "fx", "hashing kernel: fx|murmur|rapid|mod|nt")
	hvCmd.Flags().StringP("out-file", "o", "-", "out file, \"-\" for stdout")
}
