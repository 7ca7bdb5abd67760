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
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/breader"
)

// namedSeq is one named sequence loaded from FASTA/FASTQ.
type namedSeq struct {
	Name string
	Seq  []byte
}

// loadSequences reads every record of every file in files. If list is true,
// each file is instead treated as a newline list of FASTA paths to expand.
func loadSequences(files []string, list bool) ([]namedSeq, error) {
	if list {
		var expanded []string
		for _, f := range files {
			reader, err := breader.NewDefaultBufferedReader(f)
			if err != nil {
				return nil, errors.Wrapf(err, "reading file list %s", f)
			}
			for chunk := range reader.Ch {
				if chunk.Err != nil {
					return nil, errors.Wrap(chunk.Err, "reading file list")
				}
				for _, data := range chunk.Data {
					if line := data.(string); line != "" {
						expanded = append(expanded, line)
					}
				}
			}
		}
		files = expanded
	}

	seq.ValidateSeq = false
	var out []namedSeq
	for _, file := range files {
		reader, err := fastx.NewDefaultReader(file)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", file)
		}
		for {
			record, err := reader.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, errors.Wrapf(err, "reading %s", file)
			}
			name := string(record.Name)
			body := append([]byte(nil), record.Seq.Seq...)
			out = append(out, namedSeq{Name: name, Seq: body})
		}
	}
	return out, nil
}
