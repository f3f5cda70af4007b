// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package murmur3x implements the 32-bit version of the MurmurHash3
// hash. The "spaolacci" implementation with its bmixer interface is da
// bomb, although this version is slightly faster; the x64 64/128-bit
// variants of the family are provided by wrapping that package
// instead.
//
// https://en.wikipedia.org/wiki/MurmurHash
// https://github.com/spaolacci/murmur3
package murmur3x

import (
	"encoding/binary"
	"hash"

	"leb.io/fasthash"
)

const (
	c1 uint32 = 0xcc9e2d51
	c2 uint32 = 0x1b873593
	r1 uint32 = 15
	r2 uint32 = 13
	m  uint32 = 5
	n  uint32 = 0xe6546b64
)

// Size of a murmur3 32-bit hash in bytes.
const Size = 4

var (
	_ hash.Hash   = new(Digest)
	_ hash.Hash32 = new(Digest)
)

// A Digest is the streaming state: the running hash, total length, and
// up to 3 tail bytes waiting for a full block. Blocks are mixed as
// they arrive, so memory use is constant regardless of input size.
type Digest struct {
	hash uint32
	seed uint32
	clen int
	tail [4]byte
	nt   int
}

// New returns a hash.Hash32 computing the 32-bit murmur3 hash.
func New(seed uint32) *Digest {
	d := &Digest{seed: seed}
	d.Reset()
	return d
}

// Reset the hash state.
func (d *Digest) Reset() {
	d.hash = d.seed
	d.clen = 0
	d.nt = 0
}

// Size returns the size of the resulting hash.
func (d *Digest) Size() int { return Size }

// BlockSize returns the block size of the hash, 4 bytes.
func (d *Digest) BlockSize() int { return 4 }

func mixBlock(hash, k uint32) uint32 {
	k *= c1
	k = (k << r1) | (k >> (32 - r1))
	k *= c2
	hash ^= k
	return ((hash<<r2)|(hash>>(32-r2)))*m + n
}

// finalize mixes the 0..3 tail bytes and the length into hash. It
// works on values, not the Digest, so Sum32 never perturbs the
// streaming state.
func finalize(hash uint32, tail []byte, clen int) uint32 {
	k1 := uint32(0)
	switch len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = (k1 << r1) | (k1 >> (32 - r1))
		k1 *= c2
		hash ^= k1
	}
	hash ^= uint32(clen)
	hash ^= hash >> 16
	hash *= 0x85ebca6b
	hash ^= hash >> 13
	hash *= 0xc2b2ae35
	hash ^= hash >> 16
	return hash
}

// Write accepts a byte stream p used for calculating the hash.
func (d *Digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.clen += nn
	if d.nt > 0 {
		for d.nt < 4 && len(p) > 0 {
			d.tail[d.nt] = p[0]
			d.nt++
			p = p[1:]
		}
		if d.nt == 4 {
			d.hash = mixBlock(d.hash, binary.LittleEndian.Uint32(d.tail[:]))
			d.nt = 0
		}
	}
	for len(p) >= 4 {
		d.hash = mixBlock(d.hash, binary.LittleEndian.Uint32(p))
		p = p[4:]
	}
	copy(d.tail[:], p)
	d.nt += len(p)
	return nn, nil
}

// Sum appends the current hash to b and returns the resulting slice.
func (d *Digest) Sum(b []byte) []byte {
	h := d.Sum32()
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}

// Sum32 returns the current hash as a 32-bit unsigned type. It does
// not change the underlying state, so writes may continue.
func (d *Digest) Sum32() uint32 {
	return finalize(d.hash, d.tail[:d.nt], d.clen)
}

// Sum32Seed returns the 32-bit hash of data for the given seed.
func Sum32Seed(data []byte, seed uint32) uint32 {
	hash := seed
	nblocks := len(data) / 4
	for i := 0; i < nblocks; i++ {
		hash = mixBlock(hash, binary.LittleEndian.Uint32(data[i*4:]))
	}
	return finalize(hash, data[nblocks*4:], len(data))
}

// Sum32 returns the 32-bit hash of data with seed 0.
func Sum32(data []byte) uint32 {
	return Sum32Seed(data, 0)
}

type provider struct{}

func (provider) Info() fasthash.Info {
	return fasthash.Info{Name: "murmur3-32", Width: fasthash.Width32, MaxSeeds: 1}
}

func (provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	return fasthash.New32(Sum32Seed(b, uint32(fasthash.Seed(seeds, 0))))
}

func (provider) Open(seeds ...uint64) fasthash.Stream {
	return stream{New(uint32(fasthash.Seed(seeds, 0)))}
}

type stream struct{ d *Digest }

func (s stream) Write(p []byte) (int, error) { return s.d.Write(p) }
func (s stream) Digest() fasthash.Digest     { return fasthash.New32(s.d.Sum32()) }

func init() {
	fasthash.MustRegister(provider{})
}
