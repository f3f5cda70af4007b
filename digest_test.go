// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package fasthash

import (
	"bytes"
	"errors"
	"testing"
)

func TestDigestAccessors(t *testing.T) {
	d32 := New32(0xdeadbeef)
	d64 := New64(0x0123456789abcdef)
	d128 := New128(1, 2)

	if v, err := d32.Uint32(); err != nil || v != 0xdeadbeef {
		t.Errorf("Uint32 = %#x, %v", v, err)
	}
	if v, err := d64.Uint64(); err != nil || v != 0x0123456789abcdef {
		t.Errorf("Uint64 = %#x, %v", v, err)
	}
	if w0, w1, err := d128.Words128(); err != nil || w0 != 1 || w1 != 2 {
		t.Errorf("Words128 = %d, %d, %v", w0, w1, err)
	}

	// no implicit conversion between widths
	if _, err := d32.Uint64(); !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("Uint64 on 32-bit digest: %v", err)
	}
	if _, err := d64.Uint32(); !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("Uint32 on 64-bit digest: %v", err)
	}
	if _, _, err := d64.Words128(); !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("Words128 on 64-bit digest: %v", err)
	}
}

func TestDigestZero(t *testing.T) {
	var z Digest
	if !z.IsZero() {
		t.Error("zero value should be zero")
	}
	if New32(0).IsZero() {
		t.Error("an all-zero-bits 32-bit digest is a real digest")
	}
}

func TestDigestBytes(t *testing.T) {
	for _, d := range []Digest{
		New32(0x04030201),
		New64(0x0807060504030201),
		New128(0x0807060504030201, 0x100f0e0d0c0b0a09),
		New256(1, 2, 3, 4),
	} {
		b := d.Bytes()
		if len(b) != d.Width().Size() {
			t.Fatalf("%v digest serialized to %d bytes", d.Width(), len(b))
		}
		r, err := FromBytes(d.Width(), b)
		if err != nil {
			t.Fatal(err)
		}
		if r != d {
			t.Errorf("round trip changed digest: %v != %v", r, d)
		}
	}

	// serialization is little-endian words in provider order
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if got := New64(0x0807060504030201).Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes = %x, want %x", got, want)
	}
}

func TestFromBytesLength(t *testing.T) {
	if _, err := FromBytes(Width64, make([]byte, 4)); !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("short buffer: %v", err)
	}
	if _, err := FromBytes(Width(48), make([]byte, 6)); !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("bogus width: %v", err)
	}
}

func TestDigestString(t *testing.T) {
	if s := New32(0xbeef).String(); s != "0000beef" {
		t.Errorf("String = %q", s)
	}
	if s := New128(0xa, 0xb).String(); s != "000000000000000a000000000000000b" {
		t.Errorf("String = %q", s)
	}
}

func TestWordPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Word out of range should panic")
		}
	}()
	New64(1).Word(1)
}
