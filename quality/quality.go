// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// small step towards creating a package that can test hash dispersion
package quality

import (
	"math/rand"

	"github.com/willf/bitset"

	"leb.io/fasthash"
)

var r = rand.New(rand.NewSource(1))

// FlipBit returns a copy of b with bit i flipped, bit 0 being the low
// bit of b[0].
func FlipBit(b []byte, i int) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	c[i/8] ^= 1 << uint(i%8)
	return c
}

// Stats reports how the output bits of an algorithm respond to single
// bit flips of its input.
type Stats struct {
	Algorithm string
	Width     int // digest bits
	Inputs    int
	Flips     int
	Touched   uint // output bits that changed at least once
	Unmoved   int  // flips that left the digest unchanged
}

// Dead returns the output bits that never responded to any flip.
func (s *Stats) Dead() int {
	return s.Width - int(s.Touched)
}

// Coverage hates weak mixers. It hashes n random inputs of size bytes
// and, for every single bit flip of each input, records in a bitset
// which output bits changed. A healthy hash touches every output bit
// and never leaves the digest unmoved.
func Coverage(algorithm string, n, size int, seeds ...uint64) (*Stats, error) {
	base, err := fasthash.Hash(algorithm, nil, seeds...)
	if err != nil {
		return nil, err
	}
	width := base.Width().Size() * 8
	touched := bitset.New(uint(width))
	s := &Stats{Algorithm: algorithm, Width: width, Inputs: n}

	buf := make([]byte, size)
	for i := 0; i < n; i++ {
		r.Read(buf)
		h0, err := fasthash.Hash(algorithm, buf, seeds...)
		if err != nil {
			return nil, err
		}
		for bit := 0; bit < size*8; bit++ {
			h1, err := fasthash.Hash(algorithm, FlipBit(buf, bit), seeds...)
			if err != nil {
				return nil, err
			}
			s.Flips++
			if h0 == h1 {
				s.Unmoved++
				continue
			}
			for w := 0; w < (width+63)/64; w++ {
				diff := h0.Word(w) ^ h1.Word(w)
				for o := 0; o < 64; o++ {
					if diff&(1<<uint(o)) != 0 {
						touched.Set(uint(w*64 + o))
					}
				}
			}
		}
	}
	s.Touched = touched.Count()
	return s, nil
}
