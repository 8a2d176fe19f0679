package cache

// Bound is a Cache whose entries belong to one source object. The source is
// compared by identity: pass the same pointer to keep the entries, a
// different one to drop them all.
type Bound[K comparable, V any] struct {
	Cache[K, V]
	source  any
	bound   bool
	rebinds uint64
}

// NewBound creates an unbound cache with the given soft limit.
func NewBound[K comparable, V any](softLimit int) *Bound[K, V] {
	return &Bound[K, V]{
		Cache: Cache[K, V]{
			entries:   make(map[K]*cacheEntry[V]),
			softLimit: softLimit,
		},
	}
}

// Bind ties the cache to source. If source differs from the current one the
// cache is cleared and Bind reports true.
//
// source should be a pointer or another comparable value; non-comparable
// values always rebind.
func (b *Bound[K, V]) Bind(source any) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bound && sameSource(b.source, source) {
		return false
	}
	if b.bound {
		b.rebinds++
	}
	b.bound = true
	b.source = source
	b.clearLocked()
	return true
}

// Source returns the currently bound source.
func (b *Bound[K, V]) Source() any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.source
}

// Stats returns cache statistics including the rebind count.
func (b *Bound[K, V]) Stats() Stats {
	s := b.Cache.Stats()
	b.mu.Lock()
	s.Rebinds = b.rebinds
	b.mu.Unlock()
	return s
}

func sameSource(a, b any) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
