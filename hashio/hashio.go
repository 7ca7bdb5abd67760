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

// Package hashio is the binary fingerprint format for minimizer hash sets:
// a fixed header (magic, version, k, flag) followed by one uint64 per hash.
package hashio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const MainVersion uint8 = 1
const MinorVersion uint8 = 0

// Magic identifies a hnsm hash fingerprint file.
var Magic = [8]byte{'.', 'h', 'n', 's', 'm', 'h', 'a', 's'}

// ErrInvalidFileFormat means invalid file format.
var ErrInvalidFileFormat = errors.New("hashio: invalid binary format")

// Header carries the file's metadata.
type Header struct {
	MainVersion  uint8
	MinorVersion uint8
	K            int
	Flag         uint32
}

func (h Header) String() string {
	return fmt.Sprintf("hnsm hash fingerprint file v%d.%d with K=%d and Flag=%d",
		h.MainVersion, h.MinorVersion, h.K, h.Flag)
}

var be = binary.BigEndian

// Reader reads hash values from a fingerprint file.
type Reader struct {
	Header
	r    io.Reader
	err  error
	code uint64
	size uint64
}

// NewReader returns a Reader, having already consumed and validated the header.
func NewReader(r io.Reader) (*Reader, error) {
	reader := &Reader{r: r}
	reader.err = reader.readHeader()
	if reader.err != nil {
		return nil, reader.err
	}
	return reader, nil
}

func (reader *Reader) readHeader() error {
	var m [8]byte
	if reader.err = binary.Read(reader.r, be, &m); reader.err != nil {
		return reader.err
	}
	for i := 0; i < 8; i++ {
		if Magic[i] != m[i] {
			return ErrInvalidFileFormat
		}
	}

	var meta [4]uint8
	if reader.err = binary.Read(reader.r, be, &meta); reader.err != nil {
		return reader.err
	}
	if meta[0] != MainVersion {
		return fmt.Errorf("hashio: incompatible format version %d.%d", meta[0], meta[1])
	}
	reader.MainVersion = meta[0]
	reader.MinorVersion = meta[1]
	reader.K = int(meta[2])

	if reader.err = binary.Read(reader.r, be, &reader.Flag); reader.err != nil {
		return reader.err
	}
	return nil
}

// Read returns the next hash value.
func (reader *Reader) Read() (uint64, error) {
	reader.err = binary.Read(reader.r, be, &reader.code)
	if reader.err != nil {
		return 0, reader.err
	}
	reader.size++
	return reader.code, nil
}

// Writer writes hash values to a fingerprint file, lazily writing the
// header on the first Write call.
type Writer struct {
	Header
	w           io.Writer
	wroteHeader bool
	err         error
	size        int64
}

// NewWriter creates a Writer for a minimizer size k (0 when not applicable)
// and an opaque flag word.
func NewWriter(w io.Writer, k int, flag uint32) (*Writer, error) {
	if k < 0 || k > 255 {
		return nil, fmt.Errorf("hashio: invalid k %d", k)
	}
	return &Writer{Header: Header{MainVersion: MainVersion, MinorVersion: MinorVersion, K: k, Flag: flag}, w: w}, nil
}

func (writer *Writer) writeHeader() error {
	if writer.err = binary.Write(writer.w, be, Magic); writer.err != nil {
		return writer.err
	}
	if writer.err = binary.Write(writer.w, be, [4]uint8{writer.MainVersion, writer.MinorVersion, uint8(writer.K), 0}); writer.err != nil {
		return writer.err
	}
	if writer.err = binary.Write(writer.w, be, writer.Flag); writer.err != nil {
		return writer.err
	}
	return nil
}

// Write writes one hash value.
func (writer *Writer) Write(code uint64) error {
	if !writer.wroteHeader {
		if writer.err = writer.writeHeader(); writer.err != nil {
			return writer.err
		}
		writer.wroteHeader = true
	}
	if writer.err = binary.Write(writer.w, be, code); writer.err != nil {
		return writer.err
	}
	writer.size++
	return nil
}
