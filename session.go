// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package fasthash

import "fmt"

type sessionState int

const (
	stateInitialized sessionState = iota
	stateAccumulating
	stateFinalized
)

// A Session is an owned, resumable hashing context over a provider's
// native stream. It enforces the lifecycle the raw Stream does not:
// feed any number of chunks with Update, produce the digest exactly
// once with Final, and every operation afterward fails with
// ErrSessionFinalized.
//
// A Session belongs to whichever goroutine is using it; concurrent
// Update calls require external serialization. Hand a session off,
// don't share it.
type Session struct {
	name   string
	stream Stream
	state  sessionState
	n      int64
}

// Algorithm returns the algorithm name the session was opened for.
func (s *Session) Algorithm() string { return s.name }

// BytesWritten returns how many bytes have been fed so far. Useful for
// callers chunking large inputs that check a cancellation flag between
// Update calls.
func (s *Session) BytesWritten() int64 { return s.n }

// Update feeds a chunk. Chunk boundaries never affect the final
// digest; feeding b1 then b2 is identical to feeding b1+b2. An empty
// chunk is legal and leaves the session in Accumulating.
func (s *Session) Update(b []byte) error {
	if s.state == stateFinalized {
		return fmt.Errorf("%w: update on %s session", ErrSessionFinalized, s.name)
	}
	// Stream writers in this module never fail.
	n, err := s.stream.Write(b)
	if err != nil {
		return fmt.Errorf("fasthash: %s stream write: %w", s.name, err)
	}
	s.state = stateAccumulating
	s.n += int64(n)
	return nil
}

// Final computes the digest over everything fed and consumes the
// session. A session finalized with zero bytes fed yields the same
// digest as the provider's one-shot hash of an empty input.
func (s *Session) Final() (Digest, error) {
	if s.state == stateFinalized {
		return Digest{}, fmt.Errorf("%w: final on %s session", ErrSessionFinalized, s.name)
	}
	d := s.stream.Digest()
	s.state = stateFinalized
	s.stream = nil
	return d, nil
}

// Close disposes of the session without producing a digest. Closing an
// already-finalized or closed session is a no-op; the method exists so
// every exit path can release the session unconditionally.
func (s *Session) Close() error {
	if s.state == stateFinalized {
		return nil
	}
	s.state = stateFinalized
	s.stream = nil
	return nil
}
