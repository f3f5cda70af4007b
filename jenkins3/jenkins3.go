// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package jenkins3 is a transliteration of Jenkins lookup3.c.
//
// http://burtleburtle.net/bob/c/lookup3.c
//
// lookup3 folds the total input length into the initial state, so the
// streaming form buffers its input and hashes at Sum time; the result
// is identical however the writes were chunked. The function takes two
// 32-bit seeds (hashlittle2's pc and pb); pc is the better mixed of
// the two result words and is the one reported.
package jenkins3

import (
	"encoding/binary"
	"hash"

	"leb.io/fasthash"
)

// Size of a lookup3 hash in bytes.
const Size = 4

var (
	_ hash.Hash32 = new(Digest)
)

func rot(x, k uint32) uint32 {
	return x<<k | x>>(32-k)
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= rot(c, 4)
	c += b
	b -= a
	b ^= rot(a, 6)
	a += c
	c -= b
	c ^= rot(b, 8)
	b += a
	a -= c
	a ^= rot(c, 16)
	c += b
	b -= a
	b ^= rot(a, 19)
	a += c
	c -= b
	c ^= rot(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= rot(b, 14)
	a ^= c
	a -= rot(c, 11)
	b ^= a
	b -= rot(a, 25)
	c ^= b
	c -= rot(b, 16)
	a ^= c
	a -= rot(c, 4)
	b ^= a
	b -= rot(a, 14)
	c ^= b
	c -= rot(b, 24)
	return a, b, c
}

// jenkins364 is hashlittle2: it returns two 32-bit hash values. rpc is
// better mixed than rpb, so use rpc first; for a 64-bit value do
// rpc + rpb<<32.
func jenkins364(k []byte, pc, pb uint32) (rpc, rpb uint32) {
	var a, b, c uint32

	a = 0xdeadbeef + uint32(len(k)) + pc
	b, c = a, a
	c += pb

	length := len(k)
	for ; length > 12; length -= 12 {
		a += binary.LittleEndian.Uint32(k)
		b += binary.LittleEndian.Uint32(k[4:])
		c += binary.LittleEndian.Uint32(k[8:])
		a, b, c = mix(a, b, c)
		k = k[12:]
	}

	// the last, probably partial, block; a byte at a time so we never
	// read past the end
	switch length {
	case 12:
		a += binary.LittleEndian.Uint32(k)
		b += binary.LittleEndian.Uint32(k[4:])
		c += binary.LittleEndian.Uint32(k[8:])
	case 11:
		c += uint32(k[10]) << 16
		fallthrough
	case 10:
		c += uint32(k[9]) << 8
		fallthrough
	case 9:
		c += uint32(k[8])
		fallthrough
	case 8:
		a += binary.LittleEndian.Uint32(k)
		b += binary.LittleEndian.Uint32(k[4:])
	case 7:
		b += uint32(k[6]) << 16
		fallthrough
	case 6:
		b += uint32(k[5]) << 8
		fallthrough
	case 5:
		b += uint32(k[4])
		fallthrough
	case 4:
		a += binary.LittleEndian.Uint32(k)
	case 3:
		a += uint32(k[2]) << 16
		fallthrough
	case 2:
		a += uint32(k[1]) << 8
		fallthrough
	case 1:
		a += uint32(k[0])
	case 0:
		return c, b // zero length strings require no mixing
	}
	a, b, c = final(a, b, c)
	return c, b
}

// Sum64 combines both result words, rpc + rpb<<32.
func Sum64(data []byte, seed uint64) uint64 {
	rpc, rpb := jenkins364(data, uint32(seed), uint32(seed>>32))
	return uint64(rpc) + uint64(rpb)<<32
}

// Sum32 returns the 32-bit hash of data given the seed.
func Sum32(data []byte, seed uint32) uint32 {
	rpc, _ := jenkins364(data, seed, seed)
	return rpc
}

// A Digest accumulates written bytes and hashes them at Sum time.
type Digest struct {
	pc, pb uint32
	buf    []byte
}

// New returns a hash.Hash32 computing lookup3 with both seed words set
// to seed.
func New(seed uint32) *Digest {
	return NewTwo(seed, seed)
}

// NewTwo returns a hash.Hash32 computing lookup3 with distinct pc and
// pb seed words.
func NewTwo(pc, pb uint32) *Digest {
	return &Digest{pc: pc, pb: pb}
}

// Reset the hash state, keeping the seeds.
func (d *Digest) Reset() { d.buf = d.buf[:0] }

// Size returns the size of the resulting hash.
func (d *Digest) Size() int { return Size }

// BlockSize returns the block size of the hash, 12 bytes.
func (d *Digest) BlockSize() int { return 12 }

// Write accepts a byte stream p used for calculating the hash.
func (d *Digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the current hash to b and returns the resulting slice.
func (d *Digest) Sum(b []byte) []byte {
	h := d.Sum32()
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}

// Sum32 returns the current hash. The state is untouched, so writes
// may continue.
func (d *Digest) Sum32() uint32 {
	rpc, _ := jenkins364(d.buf, d.pc, d.pb)
	return rpc
}

type provider struct{}

func (provider) Info() fasthash.Info {
	return fasthash.Info{Name: "lookup3", Width: fasthash.Width32, MaxSeeds: 2}
}

func seedWords(seeds []uint64) (uint32, uint32) {
	switch len(seeds) {
	case 0:
		return 0, 0
	case 1:
		return uint32(seeds[0]), uint32(seeds[0])
	default:
		return uint32(seeds[0]), uint32(seeds[1])
	}
}

func (provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	pc, pb := seedWords(seeds)
	rpc, _ := jenkins364(b, pc, pb)
	return fasthash.New32(rpc)
}

func (provider) Open(seeds ...uint64) fasthash.Stream {
	pc, pb := seedWords(seeds)
	return stream{NewTwo(pc, pb)}
}

type stream struct{ d *Digest }

func (s stream) Write(p []byte) (int, error) { return s.d.Write(p) }
func (s stream) Digest() fasthash.Digest     { return fasthash.New32(s.d.Sum32()) }

func init() {
	fasthash.MustRegister(provider{})
}
