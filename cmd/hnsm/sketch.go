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
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/twotwotwo/sorts/sortutil"
	"github.com/wang-q/hnsm-sub000/hash"
	"github.com/wang-q/hnsm-sub000/hashio"
)

var sketchCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Write a merged minimizer sketch as a binary hash fingerprint",
	Long: `Write a merged minimizer sketch as a binary hash fingerprint

Every record of every input file is merged into one minimizer set and
written out in hnsm's binary fingerprint format (magic, header, one uint64
per hash), so it can be reloaded without re-sketching the sequences.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		k := getFlagPositiveInt(cmd, "kmer")
		w := getFlagPositiveInt(cmd, "window")
		outFile := getFlagString(cmd, "out-file")
		kind := parseHasherKind(getFlagString(cmd, "hasher"))

		checkInputFiles(args)
		seqs, err := loadSequences(args, false)
		checkError(err)

		set := make(map[uint64]struct{})
		for _, s := range seqs {
			for h := range hash.SeqMins(kind, w, k, 0, s.Seq, hash.SeqSketchOpt{}) {
				set[h] = struct{}{}
			}
		}

		// Sorting gives the fingerprint a deterministic on-disk order
		// (map iteration order would otherwise vary run to run).
		hashes := make([]uint64, 0, len(set))
		for h := range set {
			hashes = append(hashes, h)
		}
		sortutil.Uint64s(hashes)

		var out *os.File
		if outFile == "" || outFile == "-" {
			out = os.Stdout
		} else {
			out, err = os.Create(outFile)
			checkError(err)
			defer out.Close()
		}

		writer, err := hashio.NewWriter(out, k, 0)
		checkError(err)
		for _, h := range hashes {
			checkError(writer.Write(h))
		}
	},
}

func init() {
	sketchCmd.Flags().IntP("kmer", "k", 21, "k-mer size")
	sketchCmd.Flags().IntP("window", "w", 1, "minimizer window size")
	sketchCmd.Flags().StringP("hasher", "", "fx", "hashing kernel: fx|murmur|rapid|mod|nt")
	sketchCmd.Flags().StringP("out-file", "o", "-", "out file, \"-\" for stdout")
}
