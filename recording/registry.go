package recording

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for names nobody registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory creates a fresh backend for one playback.
type BackendFactory func() Backend

// registry maps normalized backend names to factories.
var registry = struct {
	sync.RWMutex
	factories map[string]BackendFactory
}{factories: make(map[string]BackendFactory)}

// backendKey folds a backend name: "Raster " and "raster" are the same
// backend.
func backendKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register makes a backend available to NewBackend. Backend packages call
// it from init:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return raster.NewBackend()
//	    })
//	}
//
// Register panics on an empty name, a nil factory or a name that is
// already taken.
func Register(name string, factory BackendFactory) {
	key := backendKey(name)
	if key == "" {
		panic("recording: Register with empty backend name")
	}
	if factory == nil {
		panic("recording: Register factory is nil for " + key)
	}

	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.factories[key]; dup {
		panic("recording: Register called twice for " + key)
	}
	registry.factories[key] = factory
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	registry.Lock()
	delete(registry.factories, backendKey(name))
	registry.Unlock()
}

// NewBackend creates the backend registered under name, matched without
// regard to case or surrounding space.
func NewBackend(name string) (Backend, error) {
	registry.RLock()
	factory, ok := registry.factories[backendKey(name)]
	registry.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import of recording/backends/...?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registry.RLock()
	defer registry.RUnlock()
	return slices.Sorted(maps.Keys(registry.factories))
}

// IsRegistered reports whether NewBackend(name) would succeed.
func IsRegistered(name string) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.factories[backendKey(name)]
	return ok
}
