// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package jenkins264 implements Bob Jenkins' second generation 64 bit hash.
// See http://burtleburtle.net/bob/hash/evahash.html
package jenkins264

import (
	"encoding/binary"

	"leb.io/fasthash"
)

// The 64-bit golden ratio.
const golden = 0x9e3779b97f4a7c13

func mix64(a, b, c uint64) (uint64, uint64, uint64) {
	a -= b - c ^ (c >> 43)
	b -= c - a ^ (a << 9)
	c -= a - b ^ (b >> 8)
	a -= b - c ^ (c >> 38)
	b -= c - a ^ (a << 23)
	c -= a - b ^ (b >> 5)
	a -= b - c ^ (c >> 35)
	b -= c - a ^ (a << 49)
	c -= a - b ^ (b >> 11)
	a -= b - c ^ (c >> 12)
	b -= c - a ^ (a << 18)
	c -= a - b ^ (b >> 22)
	return a, b, c
}

// Hash hashes k with the supplied seed and returns a 64 bit hash value.
func Hash(k []byte, seed uint64) uint64 {
	length := uint64(len(k))
	a := uint64(golden)
	b := a
	c := seed

	for len(k) >= 24 {
		a += binary.LittleEndian.Uint64(k[0:8])
		b += binary.LittleEndian.Uint64(k[8:16])
		c += binary.LittleEndian.Uint64(k[16:24])
		a, b, c = mix64(a, b, c)
		k = k[24:]
	}

	c += length
	switch len(k) {
	case 23:
		c += uint64(k[22]) << 56
		fallthrough
	case 22:
		c += uint64(k[21]) << 48
		fallthrough
	case 21:
		c += uint64(k[20]) << 40
		fallthrough
	case 20:
		c += uint64(k[19]) << 32
		fallthrough
	case 19:
		c += uint64(k[18]) << 24
		fallthrough
	case 18:
		c += uint64(k[17]) << 16
		fallthrough
	case 17:
		c += uint64(k[16]) << 8
		fallthrough
	case 16:
		b += uint64(k[15]) << 56 // the first byte of c is reserved for the length
		fallthrough
	case 15:
		b += uint64(k[14]) << 48
		fallthrough
	case 14:
		b += uint64(k[13]) << 40
		fallthrough
	case 13:
		b += uint64(k[12]) << 32
		fallthrough
	case 12:
		b += uint64(k[11]) << 24
		fallthrough
	case 11:
		b += uint64(k[10]) << 16
		fallthrough
	case 10:
		b += uint64(k[9]) << 8
		fallthrough
	case 9:
		b += uint64(k[8])
		fallthrough
	case 8:
		a += uint64(k[7]) << 56
		fallthrough
	case 7:
		a += uint64(k[6]) << 48
		fallthrough
	case 6:
		a += uint64(k[5]) << 40
		fallthrough
	case 5:
		a += uint64(k[4]) << 32
		fallthrough
	case 4:
		a += uint64(k[3]) << 24
		fallthrough
	case 3:
		a += uint64(k[2]) << 16
		fallthrough
	case 2:
		a += uint64(k[1]) << 8
		fallthrough
	case 1:
		a += uint64(k[0])
	case 0:
	}
	_, _, c = mix64(a, b, c)
	return c
}

type provider struct{}

func (provider) Info() fasthash.Info {
	return fasthash.Info{Name: "jenkins264", Width: fasthash.Width64, MaxSeeds: 1}
}

func (provider) Hash(b []byte, seeds ...uint64) fasthash.Digest {
	return fasthash.New64(Hash(b, fasthash.Seed(seeds, 0)))
}

func init() {
	fasthash.MustRegister(provider{})
}
