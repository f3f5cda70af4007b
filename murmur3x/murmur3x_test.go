// Copyright 2013, Sébastien Paolacci. All rights reserved.
// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package murmur3x

import (
	"hash"
	"testing"
)

var tests = []struct {
	hash uint32
	s    string
}{
	{0x00000000, ""},
	{0x3c2569b2, "a"},
	{0x4f31114c, "bc"},
	{0xf5797de2, "def"},
	{0x13704969, "ghij"},
	{0x248bfa47, "hello"},
	{0x149bbb7f, "hello, world"},
	{0xe31e8a70, "19 Jan 2038 at 3:14:07 AM"},
	{0xd5c48bfc, "The quick brown fox jumps over the lazy dog."},
}

func TestRef(t *testing.T) {
	var h32 hash.Hash32 = New(0)
	for _, elem := range tests {
		h32.Reset()
		h32.Write([]byte(elem.s))
		if v := h32.Sum32(); v != elem.hash {
			t.Errorf("h32.Sum32: %q 0x%x (want 0x%x)", elem.s, v, elem.hash)
		}

		if v := Sum32([]byte(elem.s)); v != elem.hash {
			t.Errorf("Sum32: %q 0x%x (want 0x%x)", elem.s, v, elem.hash)
		}
	}
}

// Byte-at-a-time writes must match a single write; so must writes
// split at every possible boundary.
func TestChunking(t *testing.T) {
	for _, elem := range tests {
		b := []byte(elem.s)
		d := New(0)
		for i := range b {
			d.Write(b[i : i+1])
		}
		if v := d.Sum32(); v != elem.hash {
			t.Errorf("byte-wise: %q 0x%x (want 0x%x)", elem.s, v, elem.hash)
		}

		for cut := 0; cut <= len(b); cut++ {
			d.Reset()
			d.Write(b[:cut])
			d.Write(b[cut:])
			if v := d.Sum32(); v != elem.hash {
				t.Errorf("split at %d: %q 0x%x (want 0x%x)", cut, elem.s, v, elem.hash)
			}
		}
	}
}

// Sum32 must be callable mid-stream without disturbing the state.
func TestSumIsRepeatable(t *testing.T) {
	d := New(0)
	d.Write([]byte("hello"))
	a := d.Sum32()
	b := d.Sum32()
	if a != b {
		t.Errorf("repeated Sum32 differs: 0x%x vs 0x%x", a, b)
	}
	d.Write([]byte(", world"))
	if v := d.Sum32(); v != 0x149bbb7f {
		t.Errorf("write after Sum32: 0x%x (want 0x149bbb7f)", v)
	}
}

func TestSeed(t *testing.T) {
	if Sum32Seed([]byte("hello"), 1) == Sum32Seed([]byte("hello"), 2) {
		t.Error("seeds 1 and 2 collide on the same input")
	}
}

func bench32(b *testing.B, length int) {
	buf := make([]byte, length)
	b.SetBytes(int64(length))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum32(buf)
	}
}

func Benchmark32_1(b *testing.B)   { bench32(b, 1) }
func Benchmark32_4(b *testing.B)   { bench32(b, 4) }
func Benchmark32_32(b *testing.B)  { bench32(b, 32) }
func Benchmark32_1K(b *testing.B)  { bench32(b, 1024) }
func Benchmark32_8K(b *testing.B)  { bench32(b, 8192) }
func Benchmark32_32K(b *testing.B) { bench32(b, 32768) }
