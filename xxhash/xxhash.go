// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package xxhash provides the 64 bit XXH64 hash under the id
// "xxhash64", backed by github.com/cespare/xxhash/v2.
package xxhash

import (
	"github.com/cespare/xxhash/v2"

	"leb.io/fasthash"
)

type provider struct{}

func (provider) Info() fasthash.Info {
	return fasthash.Info{Name: "xxhash64", Width: fasthash.Width64, MaxSeeds: 1}
}

func (p provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	if len(seeds) == 0 {
		return fasthash.New64(xxhash.Sum64(b))
	}
	s := p.Open(seeds...)
	s.Write(b)
	return s.Digest()
}

func (provider) Open(seeds ...uint64) fasthash.Stream {
	d := xxhash.New()
	if len(seeds) > 0 {
		d.ResetWithSeed(seeds[0])
	}
	return stream{d}
}

type stream struct {
	d *xxhash.Digest
}

func (s stream) Write(b []byte) (int, error) {
	return s.d.Write(b)
}

func (s stream) Digest() fasthash.Digest {
	return fasthash.New64(s.d.Sum64())
}

func init() {
	fasthash.MustRegister(provider{})
}
