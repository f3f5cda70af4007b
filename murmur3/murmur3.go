// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package murmur3 provides the x64 64 and 128 bit variants of the
// MurmurHash3 family, backed by github.com/spaolacci/murmur3. MurmurHash3
// takes a 32 bit seed; only the low 32 bits of the supplied seed word are
// used. The 128 bit digest carries (h1, h2) in the reference output order.
package murmur3

import (
	"hash"

	"github.com/spaolacci/murmur3"

	"leb.io/fasthash"
)

type provider struct {
	name  string
	width fasthash.Width
}

func (p provider) Info() fasthash.Info {
	return fasthash.Info{Name: p.name, Width: p.width, MaxSeeds: 1}
}

func (p provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	seed := uint32(fasthash.Seed(seeds, 0))
	if p.width == fasthash.Width64 {
		return fasthash.New64(murmur3.Sum64WithSeed(b, seed))
	}
	h1, h2 := murmur3.Sum128WithSeed(b, seed)
	return fasthash.New128(h1, h2)
}

func (p provider) Open(seeds ...uint64) fasthash.Stream {
	seed := uint32(fasthash.Seed(seeds, 0))
	if p.width == fasthash.Width64 {
		return stream64{murmur3.New64WithSeed(seed)}
	}
	return stream128{murmur3.New128WithSeed(seed)}
}

type stream64 struct {
	hash.Hash64
}

func (s stream64) Digest() fasthash.Digest {
	return fasthash.New64(s.Sum64())
}

type stream128 struct {
	murmur3.Hash128
}

func (s stream128) Digest() fasthash.Digest {
	h1, h2 := s.Sum128()
	return fasthash.New128(h1, h2)
}

func init() {
	fasthash.MustRegister(provider{"murmur3-64", fasthash.Width64})
	fasthash.MustRegister(provider{"murmur3-128", fasthash.Width128})
}
