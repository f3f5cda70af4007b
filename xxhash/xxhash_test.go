// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package xxhash

import (
	"testing"
)

func TestSeededStreamMatchesOneShot(t *testing.T) {
	var p provider
	msg := []byte("Four score and seven years ago")
	for _, seeds := range [][]uint64{nil, {0}, {1}, {0xdeadbeef}} {
		want := p.Hash(msg, seeds...)
		s := p.Open(seeds...)
		for i := range msg {
			if _, err := s.Write(msg[i : i+1]); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
		if got := s.Digest(); got != want {
			t.Errorf("seeds %v: stream %v != one-shot %v", seeds, got, want)
		}
	}
}

func TestSeed(t *testing.T) {
	var p provider
	msg := []byte("hello, world")
	if p.Hash(msg) != p.Hash(msg, 0) {
		t.Error("seed 0 differs from seedless")
	}
	if p.Hash(msg, 1) == p.Hash(msg, 2) {
		t.Error("seed ignored")
	}
}
