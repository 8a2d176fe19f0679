package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	const name = "test-spy"
	t.Cleanup(func() { Unregister(name) })

	Register(name, func() Backend { return &spyBackend{} })
	assert.True(t, IsRegistered(name))
	assert.True(t, IsRegistered(" Test-Spy "), "names fold case and space")
	assert.Contains(t, Backends(), name)

	b, err := NewBackend("TEST-SPY")
	require.NoError(t, err)
	assert.IsType(t, &spyBackend{}, b)

	other, err := NewBackend(name)
	require.NoError(t, err)
	assert.NotSame(t, b, other, "every call gets a fresh backend")

	Unregister(name)
	assert.False(t, IsRegistered(name))
	assert.NotPanics(t, func() { Unregister(name) })
}

func TestRegisterPanics(t *testing.T) {
	const name = "test-dup"
	t.Cleanup(func() { Unregister(name) })
	Register(name, func() Backend { return &spyBackend{} })

	tests := []struct {
		name    string
		backend string
		factory BackendFactory
	}{
		{"duplicate", name, func() Backend { return &spyBackend{} }},
		{"duplicate folded", "TEST-DUP", func() Backend { return &spyBackend{} }},
		{"nil factory", "test-nil", nil},
		{"empty name", "  ", func() Backend { return &spyBackend{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { Register(tt.backend, tt.factory) })
		})
	}
	assert.False(t, IsRegistered("test-nil"))
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("no-such-backend")
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.Contains(t, err.Error(), "forgotten import")
}

func TestBackendsSorted(t *testing.T) {
	t.Cleanup(func() {
		Unregister("test-b")
		Unregister("test-a")
	})
	Register("test-b", func() Backend { return &spyBackend{} })
	Register("test-a", func() Backend { return &spyBackend{} })
	names := Backends()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "test-a":
			ia = i
		case "test-b":
			ib = i
		}
	}
	require.GreaterOrEqual(t, ia, 0)
	assert.Less(t, ia, ib)
}
