// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package quality_test

import (
	"testing"

	"leb.io/fasthash/quality"
	_ "leb.io/fasthash/spooky"
	_ "leb.io/fasthash/xxhash"
)

func TestFlipBit(t *testing.T) {
	b := []byte{0x00, 0xff}
	c := quality.FlipBit(b, 9)
	if b[1] != 0xff {
		t.Fatal("FlipBit mutated its input")
	}
	if c[0] != 0x00 || c[1] != 0xfd {
		t.Fatalf("got %x", c)
	}
}

func TestCoverage(t *testing.T) {
	for _, a := range []string{"spooky64", "spooky128", "xxhash64"} {
		s, err := quality.Coverage(a, 4, 16)
		if err != nil {
			t.Fatal(err)
		}
		if s.Dead() != 0 {
			t.Errorf("%s: %d output bits never moved", a, s.Dead())
		}
		if s.Unmoved != 0 {
			t.Errorf("%s: %d flips left the digest unchanged", a, s.Unmoved)
		}
	}
}

func TestCoverageUnknown(t *testing.T) {
	if _, err := quality.Coverage("nope", 1, 8); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}
