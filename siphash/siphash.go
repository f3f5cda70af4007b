// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package siphash provides the keyed SipHash-2-4 function under the
// ids "siphash64" and "siphash128", backed by github.com/dchest/siphash.
// The two seed words are the two halves (k0, k1) of the 128 bit key; a
// single seed is used for both halves. The 64 bit variant also streams.
package siphash

import (
	"encoding/binary"
	"hash"

	"github.com/dchest/siphash"

	"leb.io/fasthash"
)

func key(seeds []uint64) (uint64, uint64) {
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
	name  string
	width fasthash.Width
}

func (p provider) Info() fasthash.Info {
	return fasthash.Info{Name: p.name, Width: p.width, MaxSeeds: 2}
}

func (p provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	k0, k1 := key(seeds)
	if p.width == fasthash.Width64 {
		return fasthash.New64(siphash.Hash(k0, k1, b))
	}
	h1, h2 := siphash.Hash128(k0, k1, b)
	return fasthash.New128(h1, h2)
}

type stream64 struct {
	hash.Hash64
}

func (s stream64) Digest() fasthash.Digest {
	return fasthash.New64(s.Sum64())
}

// streamer wraps the 64 bit provider; the 128 bit variant is one-shot only.
type streamer struct {
	provider
}

func (p streamer) Open(seeds ...uint64) fasthash.Stream {
	k0, k1 := key(seeds)
	var kb [16]byte
	binary.LittleEndian.PutUint64(kb[0:8], k0)
	binary.LittleEndian.PutUint64(kb[8:16], k1)
	return stream64{siphash.New(kb[:])}
}

func init() {
	fasthash.MustRegister(streamer{provider{"siphash64", fasthash.Width64}})
	fasthash.MustRegister(provider{"siphash128", fasthash.Width128})
}
