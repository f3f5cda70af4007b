// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package fasthash

import (
	"fmt"
	"io"
)

// Capability describes which contracts a provider implements.
type Capability uint8

const (
	// CapOneShot means the provider can hash a fully-resident buffer
	// in a single call.
	CapOneShot Capability = 1 << iota

	// CapStreaming means the provider can hash input delivered in
	// arbitrary chunks through a Stream.
	CapStreaming
)

func (c Capability) String() string {
	switch {
	case c&CapOneShot != 0 && c&CapStreaming != 0:
		return "oneshot+streaming"
	case c&CapOneShot != 0:
		return "oneshot"
	case c&CapStreaming != 0:
		return "streaming"
	}
	return "none"
}

// Info describes an algorithm: its registered name, native output
// width, and how many 64-bit seeds it accepts (0, 1, or 2). A provider
// invoked with fewer seeds than MaxSeeds fills the rest with its
// documented default, which is zero for every provider in this module.
type Info struct {
	Name     string
	Width    Width
	MaxSeeds int
}

// Provider is the base contract every algorithm satisfies. Concrete
// providers additionally implement OneShot, Streamer, or both; the
// registry detects which at registration time.
//
// Providers are stateless values: a OneShot call touches no shared
// mutable state and is safe from any number of goroutines, and all
// per-computation state lives in the Stream returned by Open.
type Provider interface {
	Info() Info
}

// OneShot is the single-call contract.
type OneShot interface {
	Provider
	Hash(b []byte, seeds ...uint64) Digest
}

// Streamer is the incremental contract. The returned Stream is owned
// by the caller and must not be shared across goroutines without
// external serialization. Feeding the same overall byte sequence in
// any chunking must produce an identical digest.
type Streamer interface {
	Provider
	Open(seeds ...uint64) Stream
}

// Stream is a provider-native accumulator. Write never fails and
// accepts chunks of any size; Digest computes the digest of everything
// written so far without consuming the stream. Lifecycle enforcement
// (no use after finalization) is layered on by Session, not here.
type Stream interface {
	io.Writer
	Digest() Digest
}

// checkSeeds validates seed arity against the provider's declared
// maximum. The facade applies it before any Hash or Open call; a
// provider invoked directly uses the first MaxSeeds seeds.
func checkSeeds(info Info, seeds []uint64) error {
	if len(seeds) > info.MaxSeeds {
		return fmt.Errorf("%w: %s takes at most %d, got %d",
			ErrSeedArity, info.Name, info.MaxSeeds, len(seeds))
	}
	return nil
}

// Seed returns seeds[i], or 0 when fewer seeds were supplied. The
// helper keeps provider adapters one-liners.
func Seed(seeds []uint64, i int) uint64 {
	if i < len(seeds) {
		return seeds[i]
	}
	return 0
}
