package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonecheck/pkg/cache"
)

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)
	assert.False(t, c.Put("a", 1))
	assert.False(t, c.Put("b", 2))

	// touching "a" makes "b" the oldest
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, c.Put("c", 3))
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)
	v, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLRU_Update(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, string](1)
	c.Put("k", "old")
	assert.False(t, c.Put("k", "new"))

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Stats(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[int, int](4)
	c.Put(1, 1)
	c.Get(1)
	c.Get(1)
	c.Get(2)

	assert.Equal(t, cache.Stats{Hits: 2, Misses: 1}, c.Stats())
}

func TestNewLRU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.NewLRU[string, int](0) })
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](16)
	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := strconv.Itoa(i % 32)
			c.Put(key, i)
			c.Get(key)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
	s := c.Stats()
	assert.Equal(t, uint64(64), s.Hits+s.Misses)
}
