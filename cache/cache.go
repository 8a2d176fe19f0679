package cache

import "sync"

// Cache is a generic thread-safe LRU cache with soft limit.
// When the cache exceeds softLimit, oldest entries are evicted.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64

	hits, misses, evictions uint64
}

type cacheEntry[V any] struct {
	value V
	atime int64
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.tick++
	entry.atime = c.tick
	return entry.value, true
}

// Set stores a value in the cache.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the cached value or creates it.
// create is called under lock, so it must not use the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.hits++
		c.tick++
		entry.atime = c.tick
		return entry.value
	}
	c.misses++
	value := create()
	c.store(key, value)
	return value
}

// store inserts value and evicts if over the soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cache[K, V]) clearLocked() {
	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// evictOldest removes the least recently used entries until the cache is at
// three quarters of its soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type entry struct {
		key   K
		atime int64
	}
	entries := make([]entry, 0, len(c.entries))
	for key, e := range c.entries {
		entries = append(entries, entry{key: key, atime: e.atime})
	}

	// Selection sort; eviction batches are small.
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		entries[i], entries[minIdx] = entries[minIdx], entries[i]
		delete(c.entries, entries[i].key)
		c.evictions++
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit, 0 when unlimited.
	Capacity int
	Hits     uint64
	Misses   uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate   float64
	Evictions uint64
	// Rebinds counts source identity changes (Bound only).
	Rebinds uint64
}
