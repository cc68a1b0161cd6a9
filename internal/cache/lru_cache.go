package cache

import (
	"fmt"

	"lrukv/pkg/errors"
)

// EvictCallback is called with the key and value of an entry evicted to make
// room for a new key.
type EvictCallback[K comparable, V any] func(key K, value V)

// Option configures a Cache at construction.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvictCallback registers fn to run on every capacity eviction. It is not
// called for Remove or Purge. fn runs after the new entry is stored and may
// call back into the cache.
func WithEvictCallback[K comparable, V any](fn EvictCallback[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// Cache is a fixed-capacity key-value cache with least recently used
// eviction. Entries live in a slice-backed recency list; the index maps each
// key to its slot.
//
// Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]int
	list     *recencyList[K, V]
	onEvict  EvictCallback[K, V]
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("new cache with capacity %d: %w", capacity, errors.ErrInvalidCapacity)
	}
	c := &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]int, capacity),
		list:     newRecencyList[K, V](capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the value stored for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.list.moveToFront(i)
	return c.list.slots[i].value, true
}

// Put stores value under key. Writing an existing key overwrites it in place;
// writing a new key into a full cache evicts the least recently used entry
// first.
func (c *Cache[K, V]) Put(key K, value V) {
	if i, ok := c.index[key]; ok {
		c.list.slots[i].value = value
		c.list.moveToFront(i)
		return
	}

	var victim entry[K, V]
	evicted := false
	if c.list.size >= c.capacity {
		victim, evicted = c.evict()
	}

	i := c.list.alloc(key, value)
	c.list.pushFront(i)
	c.index[key] = i

	// the callback runs once the cache is consistent, so it may use the cache
	if evicted && c.onEvict != nil {
		c.onEvict(victim.key, victim.value)
	}
}

// Remove deletes key and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.removeSlot(i)
	return true
}

// Peek returns the value for key without changing its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.list.slots[i].value, true
}

// Contains reports whether key is cached without changing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Oldest returns the entry that the next eviction would remove.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	if c.list.back == nilIndex {
		return key, value, false
	}
	e := &c.list.slots[c.list.back]
	return e.key, e.value, true
}

// Keys returns the cached keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for i := c.list.front; i != nilIndex; i = c.list.slots[i].next {
		keys = append(keys, c.list.slots[i].key)
	}
	return keys
}

// Purge removes every entry. The eviction callback is not called.
func (c *Cache[K, V]) Purge() {
	clear(c.index)
	c.list.reset()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.list.size
}

// Cap returns the capacity fixed at construction.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// evict removes the back entry and returns a copy of it.
func (c *Cache[K, V]) evict() (entry[K, V], bool) {
	i := c.list.back
	if i == nilIndex {
		return entry[K, V]{}, false
	}
	e := c.list.slots[i]
	c.removeSlot(i)
	return e, true
}

func (c *Cache[K, V]) removeSlot(i int) {
	delete(c.index, c.list.slots[i].key)
	c.list.unlink(i)
	c.list.release(i)
}
