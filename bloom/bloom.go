// Package bloom implements a fixed-size double-hashed Bloom filter, sized
// from an expected element count and a target false-positive rate.
package bloom

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Filter is a double-hashed Bloom set.
type Filter struct {
	bits []uint64
	m    uint64
	k    uint64
}

// New returns a Filter sized for n expected elements at false-positive rate p.
func New(n int, p float64) *Filter {
	m := uint64(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m == 0 {
		m = 1
	}
	k := uint64(math.Ceil(float64(m) / float64(n) * math.Ln2))
	if k == 0 {
		k = 1
	}
	return &Filter{bits: make([]uint64, (m+63)/64), m: m, k: k}
}

// hashPair derives the double-hashing seed pair from v: one hash of v and one
// of its left-rotated copy.
func (f *Filter) hashPair(v uint64) (h1, h2 uint64) {
	var buf [8]byte
	putLE(buf[:], v)
	h1 = xxhash.Sum64(buf[:])
	rotated := v<<7 | v>>(64-7)
	putLE(buf[:], rotated)
	h2 = xxhash.Sum64(buf[:])
	return
}

func putLE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func (f *Filter) positions(v uint64) []uint64 {
	h1, h2 := f.hashPair(v)
	pos := make([]uint64, f.k)
	for i := uint64(0); i < f.k; i++ {
		pos[i] = (h1 + i*h2) % f.m
	}
	return pos
}

// Insert sets the k bit positions derived from v.
func (f *Filter) Insert(v uint64) {
	for _, p := range f.positions(v) {
		f.bits[p/64] |= 1 << (p % 64)
	}
}

// Contains reports whether every bit position derived from v is set.
func (f *Filter) Contains(v uint64) bool {
	for _, p := range f.positions(v) {
		if f.bits[p/64]&(1<<(p%64)) == 0 {
			return false
		}
	}
	return true
}
