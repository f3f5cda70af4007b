// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package aeshash provides the AES round based hash from leb.io/aeshash
// under the id "aes". It needs AES-NI to be fast and its values are not
// stable across CPUs that lack the instructions, so use it for tables,
// not for persisted values.
package aeshash

import (
	"leb.io/aeshash"

	"leb.io/fasthash"
)

type provider struct{}

func (provider) Info() fasthash.Info {
	return fasthash.Info{Name: "aes", Width: fasthash.Width64, MaxSeeds: 1}
}

func (provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	return fasthash.New64(aeshash.Hash(b, fasthash.Seed(seeds, 0)))
}

func init() {
	fasthash.MustRegister(provider{})
}
