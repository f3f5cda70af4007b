// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package fasthash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOne struct{ name string }

func (f fakeOne) Info() Info { return Info{Name: f.name, Width: Width64, MaxSeeds: 1} }
func (f fakeOne) Hash(b []byte, seeds ...uint64) Digest {
	return New64(uint64(len(b)) + Seed(seeds, 0))
}

type fakeStream struct{ name string }

func (f fakeStream) Info() Info { return Info{Name: f.name, Width: Width32, MaxSeeds: 0} }
func (f fakeStream) Open(seeds ...uint64) Stream {
	return &countStream{}
}

type countStream struct{ n uint32 }

func (s *countStream) Write(p []byte) (int, error) {
	s.n += uint32(len(p))
	return len(p), nil
}
func (s *countStream) Digest() Digest { return New32(s.n) }

type fakeBare struct{}

func (fakeBare) Info() Info { return Info{Name: "zztest-bare", Width: Width64} }

func TestRegisterCapabilityDetection(t *testing.T) {
	require.NoError(t, Register(fakeOne{"zztest-one"}))
	require.NoError(t, Register(fakeStream{"zztest-stream"}))

	d, err := Lookup("zztest-one")
	require.NoError(t, err)
	assert.Equal(t, CapOneShot, d.Capabilities())
	assert.Equal(t, Width64, d.Info().Width)

	d, err = Lookup("zztest-stream")
	require.NoError(t, err)
	assert.Equal(t, CapStreaming, d.Capabilities())
}

func TestRegisterDuplicate(t *testing.T) {
	require.NoError(t, Register(fakeOne{"zztest-dup"}))
	err := Register(fakeOne{"zztest-dup"})
	require.ErrorIs(t, err, ErrDuplicateAlgorithm)

	// names are case-insensitive, so a case-variant is still a duplicate
	err = Register(fakeOne{"ZZtest-Dup"})
	require.ErrorIs(t, err, ErrDuplicateAlgorithm)

	// the original registration is untouched
	d, err := Lookup("zztest-dup")
	require.NoError(t, err)
	assert.Equal(t, "zztest-dup", d.Info().Name)
}

func TestRegisterRejectsBare(t *testing.T) {
	assert.Error(t, Register(fakeBare{}))
	_, err := Lookup("zztest-bare")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRegisterEmptyName(t *testing.T) {
	assert.Error(t, Register(fakeOne{""}))
	assert.Error(t, Register(fakeOne{"   "}))
}

func TestLookupNormalization(t *testing.T) {
	require.NoError(t, Register(fakeOne{"zztest-norm"}))
	for _, name := range []string{"zztest-norm", "ZZTEST-NORM", "  zztest-norm  "} {
		d, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "zztest-norm", d.Info().Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-hash")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestAlgorithmsSorted(t *testing.T) {
	names := Algorithms()
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestMustRegisterPanics(t *testing.T) {
	MustRegister(fakeOne{"zztest-must"})
	assert.Panics(t, func() { MustRegister(fakeOne{"zztest-must"}) })
}
