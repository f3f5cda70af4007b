// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package fasthash

import "errors"

// Sentinel errors for programmatic handling with errors.Is. Hashing is
// deterministic, so every error here marks a usage or configuration
// defect, never a transient condition worth retrying.
var (
	// ErrUnknownAlgorithm is returned when the requested algorithm name
	// has not been registered. Import the provider package (or "all")
	// to register it.
	ErrUnknownAlgorithm = errors.New("fasthash: unknown algorithm")

	// ErrUnsupportedCapability is returned when a provider is asked for
	// a contract it does not implement, e.g. opening a stream on a
	// one-shot-only algorithm.
	ErrUnsupportedCapability = errors.New("fasthash: unsupported capability")

	// ErrSessionFinalized is returned by Update or Final on a session
	// that has already been finalized or closed.
	ErrSessionFinalized = errors.New("fasthash: session already finalized")

	// ErrWidthMismatch is returned when a digest is accessed at a width
	// other than its own. Digests are never truncated or zero-extended.
	ErrWidthMismatch = errors.New("fasthash: digest width mismatch")

	// ErrDuplicateAlgorithm is returned by Register when the name is
	// already taken. Registration never silently overwrites.
	ErrDuplicateAlgorithm = errors.New("fasthash: duplicate algorithm")

	// ErrSeedArity is returned when more seeds are supplied than the
	// algorithm accepts.
	ErrSeedArity = errors.New("fasthash: too many seeds")
)
