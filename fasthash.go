// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package fasthash is a uniform front end for a family of
// non-cryptographic hash functions. Every algorithm is a provider
// registered under a stable name; callers pick one by name and get
// back a fixed-width Digest, either in one shot or by streaming chunks
// through a Session.
//
// Providers register themselves when their package is imported, so the
// set of available algorithms is exactly the set of imported provider
// packages. Import leb.io/fasthash/all to get every family this module
// ships:
//
//	import _ "leb.io/fasthash/all"
//
//	d, err := fasthash.Hash("spooky128", data)
//
// or import individual families to keep the binary small:
//
//	import _ "leb.io/fasthash/xxhash"
//
// Determinism is the guarantee this layer exists to preserve: the same
// algorithm, seeds, and bytes produce the same digest on every call,
// in every process, on every build. None of the algorithms are
// cryptographic.
package fasthash

import "fmt"

// Hash computes the named algorithm's digest of b. Seeds are optional;
// omitted seeds default to the provider's documented constant (zero
// for every provider here). Providers that implement both contracts
// are invoked one-shot; streaming-only providers are fed the whole
// input as a single chunk.
func Hash(name string, b []byte, seeds ...uint64) (Digest, error) {
	d, err := Lookup(name)
	if err != nil {
		return Digest{}, err
	}
	if err := checkSeeds(d.info, seeds); err != nil {
		return Digest{}, err
	}
	if os, ok := d.provider.(OneShot); ok {
		return os.Hash(b, seeds...), nil
	}
	s := d.provider.(Streamer).Open(seeds...)
	if _, err := s.Write(b); err != nil {
		return Digest{}, fmt.Errorf("fasthash: %s stream write: %w", d.info.Name, err)
	}
	return s.Digest(), nil
}

// Open starts a streaming session for the named algorithm. The caller
// owns the session: feed it with Update, consume it with Final, and
// release it with Close on abandon paths. One-shot-only providers
// return ErrUnsupportedCapability.
func Open(name string, seeds ...uint64) (*Session, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := checkSeeds(d.info, seeds); err != nil {
		return nil, err
	}
	st, ok := d.provider.(Streamer)
	if !ok {
		return nil, fmt.Errorf("%w: %s is one-shot only", ErrUnsupportedCapability, d.info.Name)
	}
	return &Session{name: d.info.Name, stream: st.Open(seeds...)}, nil
}
