// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package fasthash

import (
	"fmt"

	"github.com/alecthomas/binary"
)

// HashValue hashes an arbitrary Go value by serializing it with the
// binary encoder and hashing the encoding. Two values hash equal iff
// their encodings are byte-identical, so this is stable across
// processes for the fixed-layout types the encoder supports (integers
// are encoded little-endian, slices and strings length-prefixed).
//
// Keys that are already []byte or string should go through Hash
// directly; this path exists for structs and numeric keys.
func HashValue(name string, v interface{}, seeds ...uint64) (Digest, error) {
	b, err := binary.Marshal(v)
	if err != nil {
		return Digest{}, fmt.Errorf("fasthash: encode value: %w", err)
	}
	return Hash(name, b, seeds...)
}
