// Package hash implements the Hasher capability (FxHash, MurmurHash3,
// RapidHash, and the structurally distinct Mod canonical minimizer), the
// jumping-minimizer window scan, and the canonical filtered sequence sketch
// used to build minimizer sets and MinimizerInfo streams.
package hash

import (
	"github.com/shenwei356/kmers"
	"github.com/spaolacci/murmur3"
	"github.com/will-rowe/nthash"
)

// Hasher hashes a byte slice to a 64-bit digest.
type Hasher interface {
	Hash(kmer []byte) uint64
}

// HashKmers hashes every k-length window of seq with h, in position order.
func HashKmers(h Hasher, k int, seq []byte) []uint64 {
	if len(seq) < k {
		return nil
	}
	out := make([]uint64, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		out = append(out, h.Hash(seq[i:i+k]))
	}
	return out
}

// FxHash is the FxHash algorithm used by rustc: a rotate-multiply-xor mix
// folded over the input a byte at a time. No published Go module implements
// it, so it is hand-rolled here from its well-known public definition.
type FxHash struct{}

const fxSeed uint64 = 0x51_7c_c1_b7_27_22_0a_95

func (FxHash) Hash(kmer []byte) uint64 {
	var h uint64
	for _, b := range kmer {
		h = (h<<5 | h>>(64-5)) ^ uint64(b)
		h *= fxSeed
	}
	return h
}

// MurmurHash3Hasher hashes with 64-bit MurmurHash3 via spaolacci/murmur3.
type MurmurHash3Hasher struct{}

func (MurmurHash3Hasher) Hash(kmer []byte) uint64 {
	return murmur3.Sum64(kmer)
}

// RapidHash is a small, fast 64-bit multiply-xor mixing hash in the style of
// the public rapidhash algorithm. Like FxHash, no published Go module
// implements it, so it is hand-rolled from its public specification.
type RapidHash struct{}

const (
	rapidSecret0 uint64 = 0x2d358dccaa6c78a5
	rapidSecret1 uint64 = 0x8bb84b93962eacc9
)

func rapidMix(a, b uint64) uint64 {
	hi, lo := bitsMul64(a, b)
	return hi ^ lo
}

func bitsMul64(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32
	lo = aLo * bLo
	mid := aHi*bLo + lo>>32
	lo = lo&mask32 | mid<<32
	hi = aHi*bHi + mid>>32
	return
}

func (RapidHash) Hash(kmer []byte) uint64 {
	seed := rapidSecret0
	var a, b uint64
	n := len(kmer)
	switch {
	case n == 0:
		return rapidMix(seed, rapidSecret1)
	case n < 8:
		a = uint64(kmer[0])<<56 | uint64(kmer[n/2])<<32 | uint64(kmer[n-1])
	default:
		i := 0
		for ; i+8 <= n; i += 8 {
			seed = rapidMix(le64(kmer[i:])^seed, rapidSecret1)
		}
		a = le64(kmer[n-8:])
		if i < n && n >= 16 {
			b = le64(kmer[n-16:])
		}
	}
	return rapidMix(a^seed, b^rapidSecret1^uint64(n))
}

func le64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8 && i < len(b); i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

// ModHasher encodes a k-mer (k<=32) into its 2-bit packed representation,
// via the same per-base encoding unikmer ships in its own kmer package
// (degenerate IUPAC bases fold to their first listed base). This is the
// "mod-minimizer" variant: structurally a packed encoding rather than a
// mixing hash, dispatched the same way at the sketch boundary.
type ModHasher struct{}

func (ModHasher) Hash(kmer []byte) uint64 {
	code, err := kmers.Encode(kmer)
	if err != nil {
		return 0
	}
	return code
}

// NtHasher wraps will-rowe/nthash's rolling ntHash; it's re-seeded per
// k-mer here to fit the Hasher interface's one-shot shape.
type NtHasher struct{}

func (NtHasher) Hash(kmer []byte) uint64 {
	h, err := nthash.NewHasher(&kmer, uint(len(kmer)))
	if err != nil {
		return 0
	}
	v, ok := h.Next(false)
	if !ok {
		return 0
	}
	return v
}
