// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package xxh3 provides the XXH3 64 and 128 bit hashes under the ids
// "xxh3-64" and "xxh3-128", backed by github.com/zeebo/xxh3. The 128
// bit digest carries (lo, hi) 64 bit halves.
package xxh3

import (
	"github.com/zeebo/xxh3"

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
	seed := fasthash.Seed(seeds, 0)
	if p.width == fasthash.Width64 {
		return fasthash.New64(xxh3.HashSeed(b, seed))
	}
	u := xxh3.Hash128Seed(b, seed)
	return fasthash.New128(u.Lo, u.Hi)
}

func (p provider) Open(seeds ...uint64) fasthash.Stream {
	return stream{p.width, xxh3.NewSeed(fasthash.Seed(seeds, 0))}
}

type stream struct {
	width fasthash.Width
	*xxh3.Hasher
}

func (s stream) Digest() fasthash.Digest {
	if s.width == fasthash.Width64 {
		return fasthash.New64(s.Sum64())
	}
	u := s.Sum128()
	return fasthash.New128(u.Lo, u.Hi)
}

func init() {
	fasthash.MustRegister(provider{"xxh3-64", fasthash.Width64})
	fasthash.MustRegister(provider{"xxh3-128", fasthash.Width128})
}
