package cache

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "lrukv/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, capacity int) *Cache[string, string] {
	t.Helper()
	cache, err := New[string, string](capacity)
	require.NoError(t, err)
	return cache
}

func TestLRUCache_Basic(t *testing.T) {
	cache, err := New[string, []string](2)
	require.NoError(t, err)

	// Test Put and Get
	cache.Put("key1", []string{"doc1", "doc2"})
	value, exists := cache.Get("key1")
	assert.True(t, exists)
	assert.Equal(t, []string{"doc1", "doc2"}, value)

	// Test non-existent key
	value, exists = cache.Get("non-existent")
	assert.False(t, exists)
	assert.Nil(t, value)
}

func TestLRUCache_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		t.Run(fmt.Sprintf("capacity %d", capacity), func(t *testing.T) {
			cache, err := New[int, int](capacity)
			assert.Nil(t, cache)
			assert.True(t, errors.Is(err, pkgerrors.ErrInvalidCapacity))
		})
	}
}

func TestLRUCache_Capacity(t *testing.T) {
	cache := newTestCache(t, 2)

	// Fill cache
	cache.Put("key1", "value1")
	cache.Put("key2", "value2")

	// Add one more item, should evict key1
	cache.Put("key3", "value3")
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, 2, cache.Cap())

	// key1 should be evicted
	_, exists := cache.Get("key1")
	assert.False(t, exists)

	// key2 and key3 should exist
	value, exists := cache.Get("key2")
	assert.True(t, exists)
	assert.Equal(t, "value2", value)

	value, exists = cache.Get("key3")
	assert.True(t, exists)
	assert.Equal(t, "value3", value)
}

func TestLRUCache_CapacityBound(t *testing.T) {
	cache, err := New[int, int](5)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		cache.Put(i%13, i)
		assert.LessOrEqual(t, cache.Len(), cache.Cap())
	}
}

func TestLRUCache_EvictsFirstInserted(t *testing.T) {
	cache, err := New[int, int](4)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		cache.Put(i, i*10)
	}

	assert.False(t, cache.Contains(0))
	assert.Equal(t, []int{4, 3, 2, 1}, cache.Keys())
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	cache := newTestCache(t, 2)

	cache.Put("key1", "value1")
	cache.Put("key2", "value2")

	// Update value, key1 becomes most recently used
	cache.Put("key1", "newvalue1")
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, []string{"key1", "key2"}, cache.Keys())

	// Check updated value
	value, exists := cache.Get("key1")
	assert.True(t, exists)
	assert.Equal(t, "newvalue1", value)

	// key2 is now the eviction candidate
	cache.Put("key3", "value3")
	assert.False(t, cache.Contains("key2"))
	assert.True(t, cache.Contains("key1"))
}

func TestLRUCache_LRUOrder(t *testing.T) {
	cache := newTestCache(t, 2)

	// Add two items
	cache.Put("key1", "value1")
	cache.Put("key2", "value2")

	// Access key1, making it most recently used
	cache.Get("key1")

	// Add new item, should evict key2 instead of key1
	cache.Put("key3", "value3")

	// key1 should still exist (most recently used)
	value, exists := cache.Get("key1")
	assert.True(t, exists)
	assert.Equal(t, "value1", value)

	// key2 should be evicted
	_, exists = cache.Get("key2")
	assert.False(t, exists)

	// key3 should exist
	value, exists = cache.Get("key3")
	assert.True(t, exists)
	assert.Equal(t, "value3", value)
}

func TestLRUCache_PromotionProtectsKey(t *testing.T) {
	cache, err := New[int, string](3)
	require.NoError(t, err)

	cache.Put(1, "a")
	cache.Put(2, "b")
	cache.Put(3, "c")

	_, ok := cache.Get(1)
	require.True(t, ok)

	// Two new keys push out 2 and 3 but not the promoted 1.
	cache.Put(4, "d")
	cache.Put(5, "e")

	assert.True(t, cache.Contains(1))
	assert.False(t, cache.Contains(2))
	assert.False(t, cache.Contains(3))
	assert.Equal(t, []int{5, 4, 1}, cache.Keys())
}

func TestLRUCache_MissDoesNotReorder(t *testing.T) {
	cache := newTestCache(t, 3)
	cache.Put("a", "1")
	cache.Put("b", "2")
	cache.Put("c", "3")

	before := cache.Keys()
	_, ok := cache.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, cache.Len())
	assert.Equal(t, before, cache.Keys())
}

func TestLRUCache_Scenario(t *testing.T) {
	cache, err := New[int, string](2)
	require.NoError(t, err)

	cache.Put(1, "a")
	cache.Put(2, "b")

	value, ok := cache.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a", value)
	assert.Equal(t, []int{1, 2}, cache.Keys())

	cache.Put(3, "c")

	_, ok = cache.Get(2)
	assert.False(t, ok)

	value, ok = cache.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "c", value)

	value, ok = cache.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a", value)
}

func TestLRUCache_SingleCapacity(t *testing.T) {
	cache, err := New[int, string](1)
	require.NoError(t, err)

	cache.Put(1, "a")
	cache.Put(2, "b")

	_, ok := cache.Get(1)
	assert.False(t, ok)
	value, ok := cache.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "b", value)
	assert.Equal(t, 1, cache.Len())

	// Overwriting the sole entry never evicts it.
	cache.Put(2, "bb")
	value, _ = cache.Get(2)
	assert.Equal(t, "bb", value)
	assert.Equal(t, 1, cache.Len())
}

func TestLRUCache_Remove(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		keys   []string
	}{
		{"front", "c", []string{"b", "a"}},
		{"middle", "b", []string{"c", "a"}},
		{"back", "a", []string{"c", "b"}},
		{"missing", "z", []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newTestCache(t, 3)
			cache.Put("a", "1")
			cache.Put("b", "2")
			cache.Put("c", "3")

			removed := cache.Remove(tt.remove)
			assert.Equal(t, tt.remove != "z", removed)
			assert.Equal(t, tt.keys, cache.Keys())
			assert.Equal(t, len(tt.keys), cache.Len())
		})
	}
}

func TestLRUCache_RemoveSoleEntry(t *testing.T) {
	cache := newTestCache(t, 2)
	cache.Put("only", "1")

	assert.True(t, cache.Remove("only"))
	assert.False(t, cache.Remove("only"))
	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, cache.Keys())

	_, _, ok := cache.Oldest()
	assert.False(t, ok)

	// The freed slot is reused.
	cache.Put("next", "2")
	value, ok := cache.Get("next")
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestLRUCache_PeekAndContains(t *testing.T) {
	cache := newTestCache(t, 2)
	cache.Put("key1", "value1")
	cache.Put("key2", "value2")

	value, ok := cache.Peek("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", value)
	assert.True(t, cache.Contains("key1"))
	assert.False(t, cache.Contains("key3"))

	// Neither Peek nor Contains promoted key1.
	cache.Put("key3", "value3")
	assert.False(t, cache.Contains("key1"))
}

func TestLRUCache_Oldest(t *testing.T) {
	cache := newTestCache(t, 3)
	cache.Put("a", "1")
	cache.Put("b", "2")

	key, value, ok := cache.Oldest()
	assert.True(t, ok)
	assert.Equal(t, "a", key)
	assert.Equal(t, "1", value)

	cache.Get("a")
	key, _, ok = cache.Oldest()
	assert.True(t, ok)
	assert.Equal(t, "b", key)
}

func TestLRUCache_EvictCallback(t *testing.T) {
	var evicted []string
	cache, err := New[string, string](2, WithEvictCallback[string, string](func(key, value string) {
		evicted = append(evicted, key+"="+value)
	}))
	require.NoError(t, err)

	cache.Put("a", "1")
	cache.Put("b", "2")
	cache.Put("a", "11")
	cache.Put("c", "3")
	cache.Remove("a")
	cache.Put("d", "4")
	cache.Put("e", "5")

	assert.Equal(t, []string{"b=2", "c=3"}, evicted)
}

func TestLRUCache_EvictCallbackWritesBack(t *testing.T) {
	var cache *Cache[int, int]
	var evicted []int
	cache, err := New[int, int](2, WithEvictCallback[int, int](func(key, _ int) {
		evicted = append(evicted, key)
		if key == 1 {
			cache.Put(100, 100)
		}
		assert.LessOrEqual(t, cache.Len(), cache.Cap())
	}))
	require.NoError(t, err)

	cache.Put(1, 1)
	cache.Put(2, 2)
	cache.Put(3, 3) // evicts 1, whose callback writes 100 and evicts 2

	assert.Equal(t, []int{1, 2}, evicted)
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, []int{100, 3}, cache.Keys())
}

func TestLRUCache_LenTracksIndex(t *testing.T) {
	cache, err := New[int, int](3)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		cache.Put(i%5, i)
		if i%3 == 0 {
			cache.Remove(i % 4)
		}
		assert.Equal(t, len(cache.index), cache.Len())
		assert.Equal(t, len(cache.Keys()), cache.Len())
	}
	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestLRUCache_Purge(t *testing.T) {
	evictions := 0
	cache, err := New[int, int](3, WithEvictCallback[int, int](func(int, int) { evictions++ }))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		cache.Put(i, i)
	}
	cache.Purge()

	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, cache.Keys())
	assert.Equal(t, 0, evictions)

	// The cache is fully usable after a purge.
	for i := 10; i < 14; i++ {
		cache.Put(i, i)
	}
	assert.Equal(t, []int{13, 12, 11}, cache.Keys())
	assert.Equal(t, 1, evictions)
}

func BenchmarkLRUCache_Put(b *testing.B) {
	cache, _ := New[int, int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Put(i, i)
	}
}

func BenchmarkLRUCache_Get(b *testing.B) {
	cache, _ := New[int, int](1024)
	for i := 0; i < 1024; i++ {
		cache.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(i & 1023)
	}
}
