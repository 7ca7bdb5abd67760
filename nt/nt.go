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

// Package nt holds the nucleotide alphabet tables: classification,
// complement, codon translation and ORF scanning.
package nt

// Nt is a compact nucleotide class.
type Nt byte

const (
	A Nt = iota
	C
	G
	T
	N
	Invalid Nt = 255
)

// ntTable maps every ASCII byte to its Nt class. IUPAC ambiguity codes
// other than A/C/G/T/U all fold to N, matching the source alphabet table.
var ntTable [256]Nt

// complementTable maps every ASCII byte to its IUPAC complement. Case is
// preserved; space and dash map to themselves.
var complementTable [256]byte

func init() {
	for i := range ntTable {
		ntTable[i] = Invalid
	}
	set := func(bases string, v Nt) {
		for _, b := range []byte(bases) {
			ntTable[b] = v
			ntTable[b+('a'-'A')] = v
		}
	}
	set("A", A)
	set("C", C)
	set("G", G)
	set("T", T)
	set("U", T)
	set("MRWSYKVHDBN", N)

	for i := range complementTable {
		complementTable[i] = byte(i)
	}
	pairs := [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'M', 'K'}, {'R', 'Y'}, {'W', 'W'}, {'S', 'S'},
		{'V', 'B'}, {'H', 'D'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complementTable[p[0]] = p[1]
		complementTable[p[1]] = p[0]
		complementTable[p[0]+('a'-'A')] = p[1] + ('a' - 'A')
		complementTable[p[1]+('a'-'A')] = p[0] + ('a' - 'A')
	}
	complementTable['U'] = 'A'
	complementTable['u'] = 'a'
	complementTable[' '] = ' '
	complementTable['-'] = '-'
}

// ToNt classifies a single base.
func ToNt(b byte) Nt { return ntTable[b] }

// IsN reports whether b classifies as N (any non-ACGT IUPAC code).
func IsN(b byte) bool { return ntTable[b] == N }

// IsLower reports whether b is a lowercase ASCII letter (soft-masked base).
func IsLower(b byte) bool { return b >= 'a' && b <= 'z' }

// CountN counts bases classifying as N in seq.
func CountN(seq []byte) int {
	n := 0
	for _, b := range seq {
		if IsN(b) {
			n++
		}
	}
	return n
}

// ToN coerces any IUPAC ambiguity code to 'N', preserving case; ACGTU and
// non-alphabetic bytes pass through unchanged.
func ToN(b byte) byte {
	if ntTable[b] == N {
		if IsLower(b) {
			return 'n'
		}
		return 'N'
	}
	return b
}

// Complement returns the complement of seq, one byte per input byte, through
// complementTable. Unrecognised bytes map to themselves.
func Complement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = complementTable[b]
	}
	return out
}

// RevComp returns the reverse complement of seq.
func RevComp(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i, b := range seq {
		out[n-1-i] = complementTable[b]
	}
	return out
}
