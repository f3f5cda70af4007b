// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package fasthash

import (
	"encoding/binary"
	"fmt"
)

// Width is the size of a digest in bits.
type Width int

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
	Width256 Width = 256
)

// Size returns the width in bytes.
func (w Width) Size() int { return int(w) / 8 }

func (w Width) String() string { return fmt.Sprintf("%d-bit", int(w)) }

// words returns how many 64-bit words the width occupies; 32-bit
// digests use the low half of one word.
func (w Width) words() int {
	if w <= Width64 {
		return 1
	}
	return int(w) / 64
}

// A Digest is the fixed-width output of one hash computation. It is a
// value; once produced it never changes and compares with ==. Words
// are stored in the order the provider emitted them, so for a 128-bit
// algorithm Word(0) is whatever that algorithm documents as its first
// output word. No conversion between widths ever happens implicitly.
type Digest struct {
	width Width
	w     [4]uint64
}

// New32 returns a 32-bit digest.
func New32(v uint32) Digest {
	return Digest{width: Width32, w: [4]uint64{uint64(v)}}
}

// New64 returns a 64-bit digest.
func New64(v uint64) Digest {
	return Digest{width: Width64, w: [4]uint64{v}}
}

// New128 returns a 128-bit digest from the provider's first and second
// output words, in that order.
func New128(w0, w1 uint64) Digest {
	return Digest{width: Width128, w: [4]uint64{w0, w1}}
}

// New256 returns a 256-bit digest from four output words in provider
// order.
func New256(w0, w1, w2, w3 uint64) Digest {
	return Digest{width: Width256, w: [4]uint64{w0, w1, w2, w3}}
}

// Width returns the digest's width in bits.
func (d Digest) Width() Width { return d.width }

// IsZero reports whether d is the zero Digest, i.e. not the result of
// any hash call. A legitimate all-zero-bits digest still carries its
// width and is not zero in this sense.
func (d Digest) IsZero() bool { return d.width == 0 }

// Uint32 returns the value of a 32-bit digest.
func (d Digest) Uint32() (uint32, error) {
	if d.width != Width32 {
		return 0, fmt.Errorf("%w: have %v, want %v", ErrWidthMismatch, d.width, Width32)
	}
	return uint32(d.w[0]), nil
}

// Uint64 returns the value of a 64-bit digest.
func (d Digest) Uint64() (uint64, error) {
	if d.width != Width64 {
		return 0, fmt.Errorf("%w: have %v, want %v", ErrWidthMismatch, d.width, Width64)
	}
	return d.w[0], nil
}

// Words128 returns the two words of a 128-bit digest in provider
// order.
func (d Digest) Words128() (w0, w1 uint64, err error) {
	if d.width != Width128 {
		return 0, 0, fmt.Errorf("%w: have %v, want %v", ErrWidthMismatch, d.width, Width128)
	}
	return d.w[0], d.w[1], nil
}

// Word returns the i'th 64-bit output word in provider order. It
// panics if i is out of range for the width; use it only after
// checking Width.
func (d Digest) Word(i int) uint64 {
	if i < 0 || i >= d.width.words() {
		panic("fasthash: digest word index out of range")
	}
	return d.w[i]
}

// Bytes serializes the digest: each word little-endian, words in
// provider order, 32-bit digests as 4 bytes.
func (d Digest) Bytes() []byte {
	b := make([]byte, d.width.Size())
	if d.width == Width32 {
		binary.LittleEndian.PutUint32(b, uint32(d.w[0]))
		return b
	}
	for i := 0; i < d.width.words(); i++ {
		binary.LittleEndian.PutUint64(b[i*8:], d.w[i])
	}
	return b
}

// FromBytes reconstructs a digest of the given width from the Bytes
// serialization. The length must match the width exactly.
func FromBytes(w Width, b []byte) (Digest, error) {
	switch w {
	case Width32, Width64, Width128, Width256:
	default:
		return Digest{}, fmt.Errorf("%w: invalid width %d", ErrWidthMismatch, int(w))
	}
	if len(b) != w.Size() {
		return Digest{}, fmt.Errorf("%w: %d bytes for %v digest", ErrWidthMismatch, len(b), w)
	}
	d := Digest{width: w}
	if w == Width32 {
		d.w[0] = uint64(binary.LittleEndian.Uint32(b))
		return d, nil
	}
	for i := 0; i < w.words(); i++ {
		d.w[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return d, nil
}

// String formats the digest as lowercase hex, words in provider order.
func (d Digest) String() string {
	switch d.width {
	case Width32:
		return fmt.Sprintf("%08x", uint32(d.w[0]))
	case Width64:
		return fmt.Sprintf("%016x", d.w[0])
	case Width128:
		return fmt.Sprintf("%016x%016x", d.w[0], d.w[1])
	case Width256:
		return fmt.Sprintf("%016x%016x%016x%016x", d.w[0], d.w[1], d.w[2], d.w[3])
	}
	return "<zero digest>"
}
