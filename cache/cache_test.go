package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.GetOrCreate("k", create))
	assert.Equal(t, 42, c.GetOrCreate("k", create))
	assert.Equal(t, 1, calls)

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 0.5, s.HitRate, 1e-12)
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[int, int](0)
	c.Set(1, 1)
	c.Set(2, 2)

	assert.True(t, c.Delete(1))
	assert.False(t, c.Delete(1))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch 0 so it survives.
	_, _ = c.Get(0)
	c.Set(4, 4)

	assert.Equal(t, 3, c.Len())
	_, ok := c.Get(0)
	assert.True(t, ok)
	_, ok = c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, uint64(2), c.Stats().Evictions)
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := fmt.Sprintf("k%d", (g*7+i)%60)
				c.GetOrCreate(k, func() int { return i })
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 50)
}

func TestBoundRebindsOnIdentityChange(t *testing.T) {
	type table struct{ n int }
	first := &table{n: 1}
	second := &table{n: 1}

	b := NewBound[string, int](0)
	assert.True(t, b.Bind(first))
	b.Set("x", 1)

	assert.False(t, b.Bind(first))
	assert.Equal(t, 1, b.Len())

	// Equal contents, different identity.
	assert.True(t, b.Bind(second))
	assert.Equal(t, 0, b.Len())
	assert.Same(t, second, b.Source())
	assert.Equal(t, uint64(1), b.Stats().Rebinds)
}

func TestBoundNilSource(t *testing.T) {
	b := NewBound[string, int](0)
	assert.True(t, b.Bind(nil))
	b.Set("x", 1)
	assert.False(t, b.Bind(nil))
	assert.Equal(t, 1, b.Len())
}

func TestBoundNonComparableSource(t *testing.T) {
	b := NewBound[string, int](0)
	src := []int{1}
	b.Bind(src)
	b.Set("x", 1)
	assert.True(t, b.Bind(src))
	assert.Equal(t, 0, b.Len())
}
