// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package wyhash

import "testing"

func TestDeterministic(t *testing.T) {
	b := []byte("Four score and seven years ago")
	if Sum64(b) != Sum64(b) {
		t.Error("hash not deterministic")
	}
	if Sum64WithSeed(b, 1) == Sum64WithSeed(b, 2) {
		t.Error("seed ignored")
	}
}

func TestLengths(t *testing.T) {
	// hit every branch: 0, 1-3, 4-8, 9-16, 17-48 and the long loop
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i ^ 0x5a)
	}
	seen := make(map[uint64]int)
	for i := 0; i <= len(buf); i++ {
		h := Sum64WithSeed(buf[:i], 42)
		if j, dup := seen[h]; dup {
			t.Errorf("lengths %d and %d collide: %#x", i, j, h)
		}
		seen[h] = i
	}
}

func TestEmpty(t *testing.T) {
	if Sum64(nil) != Sum64([]byte{}) {
		t.Error("nil and empty differ")
	}
}

func bench(b *testing.B, length int) {
	buf := make([]byte, length)
	b.SetBytes(int64(length))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum64(buf)
	}
}

func Benchmark64_8(b *testing.B)  { bench(b, 8) }
func Benchmark64_1K(b *testing.B) { bench(b, 1024) }
func Benchmark64_8K(b *testing.B) { bench(b, 8192) }
