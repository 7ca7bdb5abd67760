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

// Package hnsm implements the hnsm command-line toolkit: distance
// estimation, hypervector sketching, clustering and synteny discovery over
// large sequence collections.
package hnsm

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// RootCmd is the base command when hnsm is called without subcommands.
var RootCmd = &cobra.Command{
	Use:   "hnsm",
	Short: "Hash-based nucleic/amino-acid sequence analysis toolkit",
	Long: fmt.Sprintf(`hnsm - hash-based nucleic/amino-acid sequence analysis toolkit

Minimizer sketching, pairwise distance kernels, clustering (DBSCAN,
k-medoids, MCL, connected components) and minimizer-graph synteny
discovery, all driven from FASTA/FASTQ input.

Version: %s
`, version),
}

// Execute adds all child commands and runs the root command. Called once
// from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	defaultThreads := runtime.NumCPU()
	if defaultThreads > 4 {
		defaultThreads = 4
	}
	RootCmd.PersistentFlags().IntP("threads", "j", defaultThreads, "number of CPUs to use")
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "verbose mode (no subcommand prints extra information)")
	RootCmd.PersistentFlags().IntP("compression-level", "", 6, "output gzip compression level (not read: .gz output always uses level 6)")

	RootCmd.AddCommand(distCmd)
	RootCmd.AddCommand(hvCmd)
	RootCmd.AddCommand(sketchCmd)
	RootCmd.AddCommand(clusterCmd)
	RootCmd.AddCommand(matCmd)
	RootCmd.AddCommand(syntCmd)
	RootCmd.AddCommand(chainCmd)
}
