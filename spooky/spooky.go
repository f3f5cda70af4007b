// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package spooky implements SpookyHash V2, Bob Jenkins' 128-bit
// noncryptographic hash, in pure Go.
//
// http://burtleburtle.net/bob/hash/spooky.html
//
// Short messages (under 192 bytes) take a separate path, exactly as in
// the reference; longer messages mix 96-byte blocks into a 12-word
// state. All reads are little-endian, so results match the reference
// implementation on x86 and are the same on every architecture.
//
// The 128-bit result is the pair (hash1, hash2) in that order; Hash64
// is hash1 and Hash32 its low 32 bits. The 128-bit seed is likewise a
// (seed1, seed2) pair; the narrower variants use the same value for
// both halves.
package spooky

import "encoding/binary"

// spookyConst: not zero, odd, and a not-very-regular mix of 1s and 0s.
const spookyConst = uint64(0xdeadbeefdeadbeef)

const (
	numVars   = 12
	blockSize = numVars * 8 // 96
	bufSize   = 2 * blockSize
)

func rot64(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

func load12(b []byte) (d [12]uint64) {
	for i := range d {
		d[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return
}

// mixBlock consumes one 96-byte block. The state is fully overwritten
// every 96 bytes; each input bit causes at least 128 bits of entropy
// before 96 other bytes are combined.
func mixBlock(d, s *[12]uint64) {
	s[0] += d[0]
	s[2] ^= s[10]
	s[11] ^= s[0]
	s[0] = rot64(s[0], 11)
	s[11] += s[1]
	s[1] += d[1]
	s[3] ^= s[11]
	s[0] ^= s[1]
	s[1] = rot64(s[1], 32)
	s[0] += s[2]
	s[2] += d[2]
	s[4] ^= s[0]
	s[1] ^= s[2]
	s[2] = rot64(s[2], 43)
	s[1] += s[3]
	s[3] += d[3]
	s[5] ^= s[1]
	s[2] ^= s[3]
	s[3] = rot64(s[3], 31)
	s[2] += s[4]
	s[4] += d[4]
	s[6] ^= s[2]
	s[3] ^= s[4]
	s[4] = rot64(s[4], 17)
	s[3] += s[5]
	s[5] += d[5]
	s[7] ^= s[3]
	s[4] ^= s[5]
	s[5] = rot64(s[5], 28)
	s[4] += s[6]
	s[6] += d[6]
	s[8] ^= s[4]
	s[5] ^= s[6]
	s[6] = rot64(s[6], 39)
	s[5] += s[7]
	s[7] += d[7]
	s[9] ^= s[5]
	s[6] ^= s[7]
	s[7] = rot64(s[7], 57)
	s[6] += s[8]
	s[8] += d[8]
	s[10] ^= s[6]
	s[7] ^= s[8]
	s[8] = rot64(s[8], 55)
	s[7] += s[9]
	s[9] += d[9]
	s[11] ^= s[7]
	s[8] ^= s[9]
	s[9] = rot64(s[9], 54)
	s[8] += s[10]
	s[10] += d[10]
	s[0] ^= s[8]
	s[9] ^= s[10]
	s[10] = rot64(s[10], 22)
	s[9] += s[11]
	s[11] += d[11]
	s[1] ^= s[9]
	s[10] ^= s[11]
	s[11] = rot64(s[11], 46)
	s[10] += s[0]
}

func endPartial(h *[12]uint64) {
	h[11] += h[1]
	h[2] ^= h[11]
	h[1] = rot64(h[1], 44)
	h[0] += h[2]
	h[3] ^= h[0]
	h[2] = rot64(h[2], 15)
	h[1] += h[3]
	h[4] ^= h[1]
	h[3] = rot64(h[3], 34)
	h[2] += h[4]
	h[5] ^= h[2]
	h[4] = rot64(h[4], 21)
	h[3] += h[5]
	h[6] ^= h[3]
	h[5] = rot64(h[5], 38)
	h[4] += h[6]
	h[7] ^= h[4]
	h[6] = rot64(h[6], 33)
	h[5] += h[7]
	h[8] ^= h[5]
	h[7] = rot64(h[7], 10)
	h[6] += h[8]
	h[9] ^= h[6]
	h[8] = rot64(h[8], 13)
	h[7] += h[9]
	h[10] ^= h[7]
	h[9] = rot64(h[9], 38)
	h[8] += h[10]
	h[11] ^= h[8]
	h[10] = rot64(h[10], 53)
	h[9] += h[11]
	h[0] ^= h[9]
	h[11] = rot64(h[11], 42)
	h[10] += h[0]
	h[1] ^= h[10]
	h[0] = rot64(h[0], 54)
}

// endBlock absorbs the final padded block and runs three EndPartial
// iterations so h0, h1 are a hash of all twelve words.
func endBlock(d, h *[12]uint64) {
	for i := 0; i < numVars; i++ {
		h[i] += d[i]
	}
	endPartial(h)
	endPartial(h)
	endPartial(h)
}

func shortMix(h0, h1, h2, h3 uint64) (uint64, uint64, uint64, uint64) {
	h2 = rot64(h2, 50)
	h2 += h3
	h0 ^= h2
	h3 = rot64(h3, 52)
	h3 += h0
	h1 ^= h3
	h0 = rot64(h0, 30)
	h0 += h1
	h2 ^= h0
	h1 = rot64(h1, 41)
	h1 += h2
	h3 ^= h1
	h2 = rot64(h2, 54)
	h2 += h3
	h0 ^= h2
	h3 = rot64(h3, 48)
	h3 += h0
	h1 ^= h3
	h0 = rot64(h0, 38)
	h0 += h1
	h2 ^= h0
	h1 = rot64(h1, 37)
	h1 += h2
	h3 ^= h1
	h2 = rot64(h2, 62)
	h2 += h3
	h0 ^= h2
	h3 = rot64(h3, 34)
	h3 += h0
	h1 ^= h3
	h0 = rot64(h0, 5)
	h0 += h1
	h2 ^= h0
	h1 = rot64(h1, 36)
	h1 += h2
	h3 ^= h1
	return h0, h1, h2, h3
}

func shortEnd(h0, h1, h2, h3 uint64) (uint64, uint64, uint64, uint64) {
	h3 ^= h2
	h2 = rot64(h2, 15)
	h3 += h2
	h0 ^= h3
	h3 = rot64(h3, 52)
	h0 += h3
	h1 ^= h0
	h0 = rot64(h0, 26)
	h1 += h0
	h2 ^= h1
	h1 = rot64(h1, 51)
	h2 += h1
	h3 ^= h2
	h2 = rot64(h2, 28)
	h3 += h2
	h0 ^= h3
	h3 = rot64(h3, 9)
	h0 += h3
	h1 ^= h0
	h0 = rot64(h0, 47)
	h1 += h0
	h2 ^= h1
	h1 = rot64(h1, 54)
	h2 += h1
	h3 ^= h2
	h2 = rot64(h2, 32)
	h3 += h2
	h0 ^= h3
	h3 = rot64(h3, 25)
	h0 += h3
	h1 ^= h0
	h0 = rot64(h0, 63)
	h1 += h0
	return h0, h1, h2, h3
}

func load64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

func load32(p []byte) uint64 {
	return uint64(binary.LittleEndian.Uint32(p))
}

// shortHash handles messages under bufSize bytes. It could hash any
// message but the long path is faster past that point.
func shortHash(in []byte, hash1, hash2 uint64) (uint64, uint64) {
	a, b := hash1, hash2
	c, d := spookyConst, spookyConst
	length := len(in)

	remainder := length % 32
	if length >= 16 {
		// handle all complete sets of 32 bytes
		for l := length; l >= 32; l -= 32 {
			c += load64(in)
			d += load64(in[8:])
			a, b, c, d = shortMix(a, b, c, d)
			a += load64(in[16:])
			b += load64(in[24:])
			in = in[32:]
		}
		if remainder >= 16 {
			c += load64(in)
			d += load64(in[8:])
			a, b, c, d = shortMix(a, b, c, d)
			in = in[16:]
			remainder -= 16
		}
	}

	// the last 0..15 bytes, and the length
	d += uint64(length) << 56
	switch remainder {
	case 15:
		d += uint64(in[14]) << 48
		fallthrough
	case 14:
		d += uint64(in[13]) << 40
		fallthrough
	case 13:
		d += uint64(in[12]) << 32
		fallthrough
	case 12:
		d += load32(in[8:])
		c += load64(in)
	case 11:
		d += uint64(in[10]) << 16
		fallthrough
	case 10:
		d += uint64(in[9]) << 8
		fallthrough
	case 9:
		d += uint64(in[8])
		fallthrough
	case 8:
		c += load64(in)
	case 7:
		c += uint64(in[6]) << 48
		fallthrough
	case 6:
		c += uint64(in[5]) << 40
		fallthrough
	case 5:
		c += uint64(in[4]) << 32
		fallthrough
	case 4:
		c += load32(in)
	case 3:
		c += uint64(in[2]) << 16
		fallthrough
	case 2:
		c += uint64(in[1]) << 8
		fallthrough
	case 1:
		c += uint64(in[0])
	case 0:
		c += spookyConst
		d += spookyConst
	}
	a, b, c, d = shortEnd(a, b, c, d)
	return a, b
}

func hash128(in []byte, hash1, hash2 uint64) (uint64, uint64) {
	if len(in) < bufSize {
		return shortHash(in, hash1, hash2)
	}

	var s [12]uint64
	s[0], s[3], s[6], s[9] = hash1, hash1, hash1, hash1
	s[1], s[4], s[7], s[10] = hash2, hash2, hash2, hash2
	s[2], s[5], s[8], s[11] = spookyConst, spookyConst, spookyConst, spookyConst

	for len(in) >= blockSize {
		d := load12(in)
		mixBlock(&d, &s)
		in = in[blockSize:]
	}

	// pad the remainder out to a whole block, its last byte holding
	// the remainder length
	var b [blockSize]byte
	copy(b[:], in)
	b[blockSize-1] = byte(len(in))
	d := load12(b[:])
	endBlock(&d, &s)
	return s[0], s[1]
}

// Hash128Seeds hashes one message with a two-word (128-bit) seed and
// returns (hash1, hash2).
func Hash128Seeds(in []byte, seed1, seed2 uint64) (uint64, uint64) {
	return hash128(in, seed1, seed2)
}

// Hash128 hashes one message in a single call, seeding both state
// words with seed, and returns (hash1, hash2).
func Hash128(in []byte, seed uint64) (uint64, uint64) {
	return hash128(in, seed, seed)
}

// Hash64 hashes one message in a single call and returns hash1.
func Hash64(in []byte, seed uint64) uint64 {
	h1, _ := hash128(in, seed, seed)
	return h1
}

// Hash32 hashes one message in a single call and returns the low
// 32 bits of hash1.
func Hash32(in []byte, seed uint32) uint32 {
	h1, _ := hash128(in, uint64(seed), uint64(seed))
	return uint32(h1)
}
