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
	"math"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/wang-q/hnsm-sub000/hash"
)

var distCmd = &cobra.Command{
	Use:   "dist",
	Short: "Estimate pairwise mash/Jaccard/containment distance from minimizer sketches",
	Long: `Estimate pairwise mash/Jaccard/containment distance from minimizer sketches

Every input file (or every record within it, without --merge) becomes one
named entry; all n*(n-1)/2 pairs are evaluated by a pool of worker
goroutines and streamed to a single writer through a bounded channel.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)

		k := getFlagPositiveInt(cmd, "kmer")
		w := getFlagPositiveInt(cmd, "window")
		merge := getFlagBool(cmd, "merge")
		sim := getFlagBool(cmd, "sim")
		zero := getFlagBool(cmd, "zero")
		list := getFlagBool(cmd, "list")
		outFile := getFlagString(cmd, "out-file")
		kind := parseHasherKind(getFlagString(cmd, "hasher"))

		checkInputFiles(args)
		seqs, err := loadSequences(args, list)
		checkError(err)

		entries := buildEntries(seqs, merge, w, k, kind)

		outfh, gw, w2, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"), 6)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w2.Close()
		}()

		runDistance(entries, opt.NumCPUs, merge, sim, zero, k, outfh)
	},
}

func init() {
	distCmd.Flags().IntP("kmer", "k", 21, "k-mer size")
	distCmd.Flags().IntP("window", "w", 1, "minimizer window size")
	distCmd.Flags().BoolP("merge", "m", false, "merge all records in a file into one sketch")
	distCmd.Flags().BoolP("sim", "s", false, "output 1-mash similarity instead of mash distance")
	distCmd.Flags().BoolP("zero", "z", false, "output pairs with zero jaccard index too")
	distCmd.Flags().BoolP("list", "l", false, "treat input files as newline lists of FASTA paths")
	distCmd.Flags().StringP("hasher", "", "fx", "hashing kernel: fx|murmur|rapid|mod|nt")
	distCmd.Flags().StringP("out-file", "o", "-", "out file, \"-\" for stdout")
}

type sketchEntry struct {
	Name string
	Set  map[uint64]struct{}
}

func buildEntries(seqs []namedSeq, merge bool, w, k int, kind hash.HasherKind) []sketchEntry {
	if !merge {
		entries := make([]sketchEntry, len(seqs))
		for i, s := range seqs {
			entries[i] = sketchEntry{Name: s.Name, Set: hash.SeqMins(kind, w, k, 0, s.Seq, hash.SeqSketchOpt{})}
		}
		return entries
	}

	order := make([]string, 0)
	sets := make(map[string]map[uint64]struct{})
	for _, s := range seqs {
		if _, ok := sets[s.Name]; !ok {
			order = append(order, s.Name)
			sets[s.Name] = make(map[uint64]struct{})
		}
		for h := range hash.SeqMins(kind, w, k, 0, s.Seq, hash.SeqSketchOpt{}) {
			sets[s.Name][h] = struct{}{}
		}
	}
	entries := make([]sketchEntry, len(order))
	for i, name := range order {
		entries[i] = sketchEntry{Name: name, Set: sets[name]}
	}
	return entries
}

// mashDistance computes |(1/k)*ln(2J/(1+J))| from a Jaccard index, 1 when J==0.
func mashDistance(j float64, k int) float64 {
	if j <= 0 {
		return 1
	}
	d := math.Log(2*j/(1+j)) / float64(k)
	if d < 0 {
		d = -d
	}
	return d
}

func intersectUnion(a, b map[uint64]struct{}) (inter, union int) {
	small, big := a, b
	if len(a) > len(b) {
		small, big = b, a
	}
	for h := range small {
		if _, ok := big[h]; ok {
			inter++
		}
	}
	union = len(a) + len(b) - inter
	return
}

// runDistance spawns workers over the outer product of entries and streams
// batched output lines to a single writer through a bounded channel.
func runDistance(entries []sketchEntry, numWorkers int, merge, sim, zero bool, k int, w interface{ WriteString(string) (int, error) }) {
	n := len(entries)
	jobs := make(chan int, numWorkers*2)
	lines := make(chan string, 256)

	var wg sync.WaitGroup
	for wi := 0; wi < numWorkers; wi++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var batch strings.Builder
			count := 0
			for i := range jobs {
				for j := i + 1; j < n; j++ {
					inter, union := intersectUnion(entries[i].Set, entries[j].Set)
					jac := 0.0
					if union > 0 {
						jac = float64(inter) / float64(union)
					}
					if jac == 0 && !zero {
						continue
					}
					mash := mashDistance(jac, k)
					if sim {
						mash = 1 - mash
					}
					cont := 0.0
					if len(entries[i].Set) > 0 {
						cont = float64(inter) / float64(len(entries[i].Set))
					}
					if merge {
						fmt.Fprintf(&batch, "%s\t%s\t%d\t%d\t%d\t%d\t%.4f\t%.4f\t%.4f\n",
							entries[i].Name, entries[j].Name, len(entries[i].Set), len(entries[j].Set), inter, union, mash, jac, cont)
					} else {
						fmt.Fprintf(&batch, "%s\t%s\t%.4f\t%.4f\t%.4f\n", entries[i].Name, entries[j].Name, mash, jac, cont)
					}
					count++
					if count >= 1000 {
						lines <- batch.String()
						batch.Reset()
						count = 0
					}
				}
			}
			if count > 0 {
				lines <- batch.String()
			}
		}()
	}

	go func() {
		for i := 0; i < n; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(lines)
	}()

	for chunk := range lines {
		w.WriteString(chunk)
	}
}
