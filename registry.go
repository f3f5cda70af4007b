// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package fasthash

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// A Descriptor is one registry entry: the provider, its Info, and the
// capability set detected when it was registered. Descriptors are
// immutable after registration.
type Descriptor struct {
	info     Info
	caps     Capability
	provider Provider
}

// Info returns the registered algorithm's description.
func (d *Descriptor) Info() Info { return d.info }

// Capabilities returns the contracts the provider implements.
func (d *Descriptor) Capabilities() Capability { return d.caps }

// Provider returns the registered provider value.
func (d *Descriptor) Provider() Provider { return d.provider }

// The registry is populated by provider init functions during program
// startup and is effectively read-only afterward. Late Register calls
// are still safe: mutation is serialized behind the write lock and
// readers only ever observe complete descriptors.
var registry = struct {
	sync.RWMutex
	m map[string]*Descriptor
}{m: make(map[string]*Descriptor)}

// normalize maps an algorithm name to its registry key. Names are
// case-insensitive and surrounding space is ignored.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a provider under the name in its Info. A second
// registration of the same name fails with ErrDuplicateAlgorithm; an
// ambiguous registry is a configuration defect, never resolved by
// overwriting.
func Register(p Provider) error {
	info := p.Info()
	name := normalize(info.Name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrDuplicateAlgorithm)
	}
	caps := Capability(0)
	if _, ok := p.(OneShot); ok {
		caps |= CapOneShot
	}
	if _, ok := p.(Streamer); ok {
		caps |= CapStreaming
	}
	if caps == 0 {
		return fmt.Errorf("fasthash: provider %q implements neither OneShot nor Streamer", info.Name)
	}

	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.m[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, info.Name)
	}
	registry.m[name] = &Descriptor{info: info, caps: caps, provider: p}
	return nil
}

// MustRegister is Register for provider init functions; a collision at
// startup aborts the process rather than leaving the registry
// ambiguous.
func MustRegister(p Provider) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor for name, or ErrUnknownAlgorithm.
func Lookup(name string) (*Descriptor, error) {
	registry.RLock()
	d, ok := registry.m[normalize(name)]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return d, nil
}

// Algorithms returns the registered names in sorted order.
func Algorithms() []string {
	registry.RLock()
	names := make([]string, 0, len(registry.m))
	for name := range registry.m {
		names = append(names, name)
	}
	registry.RUnlock()
	sort.Strings(names)
	return names
}
