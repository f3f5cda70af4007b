// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package spooky

import (
	"hash"

	"leb.io/fasthash"
)

var _ hash.Hash = (*Hasher)(nil)

// A Hasher is the incremental form of SpookyHash. Messages under
// bufSize total bytes stay buffered and go through the short path at
// Sum time; past that the hasher mixes whole 96-byte blocks as they
// arrive and keeps at most 191 bytes buffered. Sum does not consume
// the state, so it can be called mid-stream.
type Hasher struct {
	state        [numVars]uint64
	buf          [bufSize]byte
	length       int
	rem          int
	seed1, seed2 uint64
	started      bool
}

// New returns a Hasher seeded with the two-word (128-bit) seed
// (seed1, seed2).
func New(seed1, seed2 uint64) *Hasher {
	return &Hasher{seed1: seed1, seed2: seed2}
}

// Write absorbs p. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	newLen := n + h.rem

	// small message so far, just buffer it
	if newLen < bufSize {
		copy(h.buf[h.rem:], p)
		h.length += n
		h.rem = newLen
		return n, nil
	}

	s := h.state
	if !h.started {
		s[0], s[3], s[6], s[9] = h.seed1, h.seed1, h.seed1, h.seed1
		s[1], s[4], s[7], s[10] = h.seed2, h.seed2, h.seed2, h.seed2
		s[2], s[5], s[8], s[11] = spookyConst, spookyConst, spookyConst, spookyConst
		h.started = true
	}
	h.length += n

	if h.rem > 0 {
		prefix := bufSize - h.rem
		copy(h.buf[h.rem:], p[:prefix])
		d := load12(h.buf[:])
		mixBlock(&d, &s)
		d = load12(h.buf[blockSize:])
		mixBlock(&d, &s)
		p = p[prefix:]
	}

	for len(p) >= blockSize {
		d := load12(p)
		mixBlock(&d, &s)
		p = p[blockSize:]
	}

	h.rem = len(p)
	copy(h.buf[:], p)
	h.state = s
	return n, nil
}

// Sum128 returns (hash1, hash2) for everything written so far.
func (h *Hasher) Sum128() (uint64, uint64) {
	if h.length < bufSize {
		return shortHash(h.buf[:h.length], h.seed1, h.seed2)
	}

	// work on copies so the hasher can keep accumulating
	s := h.state
	buf := h.buf
	rem := h.rem
	p := buf[:]
	if rem >= blockSize {
		d := load12(p)
		mixBlock(&d, &s)
		p = p[blockSize:]
		rem -= blockSize
	}
	for i := rem; i < blockSize; i++ {
		p[i] = 0
	}
	p[blockSize-1] = byte(rem)
	d := load12(p)
	endBlock(&d, &s)
	return s[0], s[1]
}

// Sum64 returns hash1 for everything written so far.
func (h *Hasher) Sum64() uint64 {
	h1, _ := h.Sum128()
	return h1
}

// Sum appends the 16-byte digest (hash1 then hash2, little-endian) to b.
func (h *Hasher) Sum(b []byte) []byte {
	h1, h2 := h.Sum128()
	return append(b,
		byte(h1), byte(h1>>8), byte(h1>>16), byte(h1>>24),
		byte(h1>>32), byte(h1>>40), byte(h1>>48), byte(h1>>56),
		byte(h2), byte(h2>>8), byte(h2>>16), byte(h2>>24),
		byte(h2>>32), byte(h2>>40), byte(h2>>48), byte(h2>>56))
}

// Reset returns the Hasher to its just-seeded state.
func (h *Hasher) Reset() {
	h.state = [numVars]uint64{}
	h.length = 0
	h.rem = 0
	h.started = false
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return 16 }

// BlockSize returns the internal block size in bytes.
func (h *Hasher) BlockSize() int { return blockSize }

// seedPair maps variadic seeds to the (seed1, seed2) state pair: two
// seeds are used as given, a single seed seeds both halves the way
// Hash64 and Hash32 do, none means zero.
func seedPair(seeds []uint64) (uint64, uint64) {
	switch len(seeds) {
	case 0:
		return 0, 0
	case 1:
		return seeds[0], seeds[0]
	default:
		return seeds[0], seeds[1]
	}
}

type provider struct {
	name     string
	width    fasthash.Width
	maxSeeds int
}

func (p provider) Info() fasthash.Info {
	return fasthash.Info{Name: p.name, Width: p.width, MaxSeeds: p.maxSeeds}
}

func (p provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	s1, s2 := seedPair(seeds)
	h1, h2 := hash128(b, s1, s2)
	return p.digest(h1, h2)
}

func (p provider) Open(seeds ...uint64) fasthash.Stream {
	s1, s2 := seedPair(seeds)
	return stream{p: p, h: New(s1, s2)}
}

func (p provider) digest(h1, h2 uint64) fasthash.Digest {
	switch p.width {
	case fasthash.Width32:
		return fasthash.New32(uint32(h1))
	case fasthash.Width64:
		return fasthash.New64(h1)
	default:
		return fasthash.New128(h1, h2)
	}
}

type stream struct {
	p provider
	h *Hasher
}

func (s stream) Write(p []byte) (int, error) { return s.h.Write(p) }

func (s stream) Digest() fasthash.Digest {
	h1, h2 := s.h.Sum128()
	return s.p.digest(h1, h2)
}

func init() {
	fasthash.MustRegister(provider{name: "spooky32", width: fasthash.Width32, maxSeeds: 1})
	fasthash.MustRegister(provider{name: "spooky64", width: fasthash.Width64, maxSeeds: 1})
	fasthash.MustRegister(provider{name: "spooky128", width: fasthash.Width128, maxSeeds: 2})
}
