// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package t1ha provides the t1ha "fast positive hash" under the id
// "t1ha", backed by github.com/dgryski/go-t1ha.
package t1ha

import (
	"github.com/dgryski/go-t1ha"

	"leb.io/fasthash"
)

type provider struct{}

func (provider) Info() fasthash.Info {
	return fasthash.Info{Name: "t1ha", Width: fasthash.Width64, MaxSeeds: 1}
}

func (provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	return fasthash.New64(t1ha.Sum64(b, fasthash.Seed(seeds, 0)))
}

func init() {
	fasthash.MustRegister(provider{})
}
