// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package wyhash implements the 64-bit wyhash variant used as the Go
// runtime's hashing fallback. It is a seeded one-shot hash: fast on
// short keys, no streaming state.
//
// The secret constants k0..k4 come from the reference implementation
// and are fixed so outputs are reproducible; no alternate secret
// derivation is supported.
//
// https://github.com/wangyi-fudan/wyhash
package wyhash

import (
	"encoding/binary"
	"math/bits"

	"leb.io/fasthash"
)

const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)
)

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// Sum64 returns the wyhash of b with seed 0.
func Sum64(b []byte) uint64 { return Sum64WithSeed(b, 0) }

// Sum64WithSeed returns the wyhash of b with the given seed.
func Sum64WithSeed(b []byte, seed uint64) uint64 {
	var a, c uint64
	s := len(b)
	seed ^= k0

	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(b[0])
		a |= uint64(b[s>>1]) << 8
		a |= uint64(b[s-1]) << 16
	case s == 4:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = a
	case s < 8:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = uint64(binary.LittleEndian.Uint32(b[s-4:]))
	case s == 8:
		a = binary.LittleEndian.Uint64(b)
		c = a
	case s <= 16:
		a = binary.LittleEndian.Uint64(b)
		c = binary.LittleEndian.Uint64(b[s-8:])
	default:
		l := s
		i := 0
		if l > 48 {
			seed1 := seed
			seed2 := seed
			for ; l > 48; l -= 48 {
				seed = mix(binary.LittleEndian.Uint64(b[i:])^k1, binary.LittleEndian.Uint64(b[i+8:])^seed)
				seed1 = mix(binary.LittleEndian.Uint64(b[i+16:])^k2, binary.LittleEndian.Uint64(b[i+24:])^seed1)
				seed2 = mix(binary.LittleEndian.Uint64(b[i+32:])^k3, binary.LittleEndian.Uint64(b[i+40:])^seed2)
				i += 48
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix(binary.LittleEndian.Uint64(b[i:])^k1, binary.LittleEndian.Uint64(b[i+8:])^seed)
			i += 16
		}
		a = binary.LittleEndian.Uint64(b[i+l-16:])
		c = binary.LittleEndian.Uint64(b[i+l-8:])
	}

	return mix(k4^uint64(s), mix(a^k1, c^seed))
}

type provider struct{}

func (provider) Info() fasthash.Info {
	return fasthash.Info{Name: "wyhash64", Width: fasthash.Width64, MaxSeeds: 1}
}

func (provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	return fasthash.New64(Sum64WithSeed(b, fasthash.Seed(seeds, 0)))
}

func init() {
	fasthash.MustRegister(provider{})
}
