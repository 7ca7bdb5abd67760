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
	"math/rand"
	"os"
	"sort"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/shenwei356/stable"
	"github.com/spf13/cobra"
	"github.com/wang-q/hnsm-sub000/cc"
	"github.com/wang-q/hnsm-sub000/dbscan"
	"github.com/wang-q/hnsm-sub000/kmedoids"
	"github.com/wang-q/hnsm-sub000/matrix"
	"github.com/wang-q/hnsm-sub000/mcl"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster names from a three-column pairwise-score TSV",
	Long: `Cluster names from a three-column pairwise-score TSV

Reads a (name1, name2, score) TSV, builds a symmetric score matrix indexed
in insertion order, and runs one of dbscan/kmedoids/mcl/cc over it.
Emits a cluster TSV (one cluster per line, members tab-separated, sorted
lexicographically within a cluster, clusters sorted by descending size
then by the lexicographic order of the first member) and, if --pair-file
is set, a representative-pair TSV alongside it.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		method := getFlagString(cmd, "method")
		same := getFlagFloat64(cmd, "same")
		missing := getFlagFloat64(cmd, "missing")
		threshold := getFlagFloat64(cmd, "threshold")
		outFile := getFlagString(cmd, "out-file")
		pairFile := getFlagString(cmd, "pair-file")

		checkInputFiles(args)
		m, names, err := matrix.FromPairScores(args[0], same, missing)
		checkError(err)

		var clusters [][]int
		var pairs [][2]int

		switch method {
		case "dbscan":
			eps := getFlagFloat64(cmd, "eps")
			minPts := getFlagPositiveInt(cmd, "min-points")
			labels := dbscan.PerformClustering(m, dbscan.Config{Eps: eps, MinPoints: minPts})
			clusters = dbscan.ResultsCluster(labels)
			pairs = dbscan.ResultsPair(m, labels)
		case "kmedoids":
			k := getFlagPositiveInt(cmd, "k")
			runs := getFlagPositiveInt(cmd, "runs")
			clusters = kmedoids.PerformClustering(m, kmedoids.Config{K: k, MaxIter: 100, Runs: runs, Rand: rand.New(rand.NewSource(1))})
			pairs = representativePairs(m, clusters)
		case "mcl":
			inflation := getFlagFloat64(cmd, "inflation")
			var edges []mcl.Edge
			for _, e := range m.Entries() {
				edges = append(edges, mcl.Edge{I: e.I, J: e.J, Weight: e.Score})
				if e.I != e.J {
					edges = append(edges, mcl.Edge{I: e.J, J: e.I, Weight: e.Score})
				}
			}
			clusters = mcl.PerformClustering(m.Size(), edges, mcl.Config{Inflation: inflation})
			pairs = representativePairs(m, clusters)
		case "cc":
			clusters = cc.PerformClustering(m, threshold)
			pairs = representativePairs(m, clusters)
		default:
			checkError(fmt.Errorf("unknown cluster method %q", method))
		}

		sortClusters(clusters, names)

		outfh, gw, w2, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"), 6)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w2.Close()
		}()
		for _, cluster := range clusters {
			memberNames := make([]string, len(cluster))
			for i, idx := range cluster {
				memberNames[i] = names[idx]
			}
			sort.Strings(memberNames)
			fmt.Fprintln(outfh, strings.Join(memberNames, "\t"))
		}

		if pairFile != "" {
			pfh, pgw, pw2, err := outStream(pairFile, strings.HasSuffix(strings.ToLower(pairFile), ".gz"), 6)
			checkError(err)
			defer func() {
				pfh.Flush()
				if pgw != nil {
					pgw.Close()
				}
				pw2.Close()
			}()
			for _, p := range pairs {
				fmt.Fprintf(pfh, "%s\t%s\n", names[p[0]], names[p[1]])
			}
		}

		if getFlagBool(cmd, "stats") {
			printClusterStats(clusters)
		}
	},
}

func init() {
	clusterCmd.Flags().StringP("method", "m", "dbscan", "clustering method: dbscan|kmedoids|mcl|cc")
	clusterCmd.Flags().Float64P("same", "", 1, "default score for i==i when absent from the input")
	clusterCmd.Flags().Float64P("missing", "", 0, "default score for an absent pair")
	clusterCmd.Flags().Float64P("eps", "", 0.5, "dbscan: neighbourhood radius")
	clusterCmd.Flags().IntP("min-points", "", 2, "dbscan: minimum neighbours to be a core point")
	clusterCmd.Flags().IntP("k", "", 2, "kmedoids: number of clusters")
	clusterCmd.Flags().IntP("runs", "", 10, "kmedoids: number of random-restart runs")
	clusterCmd.Flags().Float64P("inflation", "", 2.0, "mcl: inflation power")
	clusterCmd.Flags().Float64P("threshold", "", 0.5, "cc: minimum score to union two points")
	clusterCmd.Flags().StringP("out-file", "o", "-", "cluster TSV out file, \"-\" for stdout")
	clusterCmd.Flags().StringP("pair-file", "p", "", "representative-pair TSV out file, empty to skip")
	clusterCmd.Flags().BoolP("stats", "", false, "print a cluster-size summary table to stderr")
}

// printClusterStats renders a plain summary table (largest cluster first)
// to stderr with humanized counts.
func printClusterStats(clusters [][]int) {
	style := &stable.TableStyle{
		Name:      "plain",
		HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		Padding:   "",
	}
	columns := []stable.Column{
		{Header: "cluster"},
		{Header: "size", Align: stable.AlignRight},
	}
	tbl := stable.New()
	tbl.HeaderWithFormat(columns)

	total := 0
	for i, cluster := range clusters {
		tbl.AddRow([]interface{}{i, humanize.Comma(int64(len(cluster)))})
		total += len(cluster)
	}
	tbl.AddRow([]interface{}{"total", humanize.Comma(int64(total))})
	os.Stderr.Write(tbl.Render(style))
}

// representativePairs builds (rep, member) rows for clustering methods that
// don't return labels directly: rep is the member minimising the sum of
// distances to the rest of its cluster.
func representativePairs(m *matrix.Symmetric, clusters [][]int) [][2]int {
	var pairs [][2]int
	for _, cluster := range clusters {
		rep := cluster[0]
		best := sumDistTo(m, rep, cluster)
		for _, p := range cluster[1:] {
			d := sumDistTo(m, p, cluster)
			if d < best {
				best = d
				rep = p
			}
		}
		for _, p := range cluster {
			pairs = append(pairs, [2]int{rep, p})
		}
	}
	return pairs
}

func sumDistTo(m *matrix.Symmetric, p int, cluster []int) float64 {
	total := 0.0
	for _, q := range cluster {
		if q != p {
			total += m.Get(p, q)
		}
	}
	return total
}

// sortClusters sorts members of each cluster by name and sorts clusters by
// descending size, ties broken by the lexicographic order of the first member.
func sortClusters(clusters [][]int, names []string) {
	for _, cluster := range clusters {
		sort.Slice(cluster, func(i, j int) bool { return names[cluster[i]] < names[cluster[j]] })
	}
	sort.Slice(clusters, func(i, j int) bool {
		if len(clusters[i]) != len(clusters[j]) {
			return len(clusters[i]) > len(clusters[j])
		}
		return names[clusters[i][0]] < names[clusters[j][0]]
	})
}
