// Package cache provides the caches the renderer keeps between lookups.
//
// # Cache[K, V]
//
// A thread-safe LRU cache with a soft limit. When the limit is exceeded the
// least recently used quarter of the entries is evicted.
//
//	c := cache.New[string, geom.Matrix](64)
//	m := c.GetOrCreate("LAYOUT1", build)
//
// # Bound[K, V]
//
// A Cache tied to the identity of the source it was filled from. Binding a
// different source (a new materials table, another scene) clears every entry
// at once; there is no per-entry invalidation.
//
//	b := cache.NewBound[string, Material](0)
//	b.Bind(scene.Tables.Materials)
//	d := b.GetOrCreate(key, resolve)
//
// Both types are safe for concurrent use and must not be copied after
// creation.
package cache
