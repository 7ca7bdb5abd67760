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
	"strings"

	"github.com/spf13/cobra"
	"github.com/wang-q/hnsm-sub000/matrix"
)

var matCmd = &cobra.Command{
	Use:   "mat",
	Short: "Pairwise-score matrix conversions",
}

var matPhylipCmd = &cobra.Command{
	Use:   "phylip",
	Short: "Convert pairwise distances to a PHYLIP distance matrix",
	Long: `Convert pairwise distances to a PHYLIP distance matrix

Conversion modes:
  full   a full square matrix
  lower  a lower-triangular matrix
  strict a strict PHYLIP matrix: names truncated/padded to 10 columns,
         distances space-separated with 6 decimal places
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode := getFlagString(cmd, "mode")
		same := getFlagFloat64(cmd, "same")
		missing := getFlagFloat64(cmd, "missing")
		outFile := getFlagString(cmd, "out-file")

		checkInputFiles(args)
		m, names, err := matrix.FromPairScores(args[0], same, missing)
		checkError(err)
		size := m.Size()

		outfh, gw, w2, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"), 6)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w2.Close()
		}()

		fmt.Fprintf(outfh, "%4d\n", size)
		for i := 0; i < size; i++ {
			switch mode {
			case "full":
				fmt.Fprint(outfh, names[i])
				for j := 0; j < size; j++ {
					fmt.Fprintf(outfh, "\t%v", m.Get(i, j))
				}
			case "lower":
				fmt.Fprint(outfh, names[i])
				for j := 0; j < i; j++ {
					fmt.Fprintf(outfh, "\t%v", m.Get(i, j))
				}
			case "strict":
				name := names[i]
				if len(name) > 10 {
					name = name[:10]
				}
				fmt.Fprintf(outfh, "%-10s", name)
				for j := 0; j < size; j++ {
					fmt.Fprintf(outfh, " %.6f", m.Get(i, j))
				}
			default:
				checkError(fmt.Errorf("unknown mode %q", mode))
			}
			fmt.Fprintln(outfh)
		}
	},
}

func init() {
	matPhylipCmd.Flags().StringP("mode", "", "full", "conversion mode: full|lower|strict")
	matPhylipCmd.Flags().Float64P("same", "", 0.0, "default score of identical element pairs")
	matPhylipCmd.Flags().Float64P("missing", "", 1.0, "default score of missing pairs")
	matPhylipCmd.Flags().StringP("out-file", "o", "-", "out file, \"-\" for stdout")

	matCmd.AddCommand(matPhylipCmd)
}
