// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package city provides Google's CityHash in its 32, 64 and 128 bit
// variants, backed by github.com/dataence/cityhash. The 32 bit variant
// is unseeded; the 64 and 128 bit variants take up to two seed words.
// The 128 bit digest carries (lower, higher) 64 bit halves.
package city

import (
	"github.com/dataence/cityhash"

	"leb.io/fasthash"
)

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
	n := uint32(len(b))
	switch p.width {
	case fasthash.Width32:
		return fasthash.New32(cityhash.CityHash32(b, n))
	case fasthash.Width64:
		switch len(seeds) {
		case 0:
			return fasthash.New64(cityhash.CityHash64(b, n))
		case 1:
			return fasthash.New64(cityhash.CityHash64WithSeed(b, n, seeds[0]))
		default:
			return fasthash.New64(cityhash.CityHash64WithSeeds(b, n, seeds[0], seeds[1]))
		}
	default:
		if len(seeds) == 0 {
			u := cityhash.CityHash128(b, n)
			return fasthash.New128(u.Lower64(), u.Higher64())
		}
		s0, s1 := seedPair(seeds)
		u := cityhash.CityHash128WithSeed(b, n, cityhash.Uint128{s0, s1})
		return fasthash.New128(u.Lower64(), u.Higher64())
	}
}

func init() {
	fasthash.MustRegister(provider{"city32", fasthash.Width32, 0})
	fasthash.MustRegister(provider{"city64", fasthash.Width64, 2})
	fasthash.MustRegister(provider{"city128", fasthash.Width128, 2})
}
