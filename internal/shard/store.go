package shard

import (
	"fmt"
	"sync"

	"lrukv/internal/cache"
	"lrukv/pkg/errors"
	"lrukv/pkg/logger"

	"github.com/twmb/murmur3"
)

// Stats is a point-in-time view of a Store.
type Stats struct {
	Shards    int    `json:"shards"`
	Len       int    `json:"len"`
	Cap       int    `json:"cap"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

type shard struct {
	mu        sync.Mutex
	cache     *cache.Cache[string, string]
	hits      uint64
	misses    uint64
	evictions uint64
}

// Store partitions keys over independently locked LRU caches. Eviction is
// strict LRU within each shard only.
//
// Store is safe for concurrent use.
type Store struct {
	shards   []*shard
	capacity int
}

// New builds a store holding at most capacity entries in total. The capacity
// is split across the shards as evenly as possible; shards beyond capacity
// would hold nothing, so their count is clamped.
func New(capacity, shards int) (*Store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("new store with capacity %d: %w", capacity, errors.ErrInvalidCapacity)
	}
	if shards < 1 {
		return nil, fmt.Errorf("new store with %d shards: %w", shards, errors.ErrInvalidShardCount)
	}
	if shards > capacity {
		logger.Warn("shard count exceeds capacity, clamping", "shards", shards, "capacity", capacity)
		shards = capacity
	}

	s := &Store{
		shards:   make([]*shard, shards),
		capacity: capacity,
	}
	per, extra := capacity/shards, capacity%shards
	for i := range s.shards {
		n := per
		if i < extra {
			n++
		}
		sh := &shard{}
		c, err := cache.New[string, string](n, cache.WithEvictCallback[string, string](func(string, string) {
			// runs under sh.mu from inside Put
			sh.evictions++
		}))
		if err != nil {
			return nil, err
		}
		sh.cache = c
		s.shards[i] = sh
	}

	logger.Info("store created", "capacity", capacity, "shards", shards)
	return s, nil
}

func (s *Store) shardFor(key string) *shard {
	return s.shards[murmur3.Sum32([]byte(key))%uint32(len(s.shards))]
}

// Get returns the value for key and marks it most recently used in its shard.
func (s *Store) Get(key string) (string, bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	value, ok := sh.cache.Get(key)
	if ok {
		sh.hits++
	} else {
		sh.misses++
	}
	return value, ok
}

// Put stores value under key, evicting from the key's shard when it is full.
func (s *Store) Put(key, value string) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.cache.Put(key, value)
}

// Remove deletes key and reports whether it was present.
func (s *Store) Remove(key string) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.cache.Remove(key)
}

// Keys lists keys shard by shard, each shard from most to least recently
// used.
func (s *Store) Keys() []string {
	var keys []string
	for _, sh := range s.shards {
		sh.mu.Lock()
		keys = append(keys, sh.cache.Keys()...)
		sh.mu.Unlock()
	}
	return keys
}

// Purge empties every shard. Counters are kept.
func (s *Store) Purge() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		sh.cache.Purge()
		sh.mu.Unlock()
	}
}

// Len returns the number of entries across all shards.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += sh.cache.Len()
		sh.mu.Unlock()
	}
	return n
}

// Cap returns the total capacity passed to New.
func (s *Store) Cap() int {
	return s.capacity
}

// Stats sums the counters and sizes of every shard.
func (s *Store) Stats() Stats {
	st := Stats{Shards: len(s.shards), Cap: s.capacity}
	for _, sh := range s.shards {
		sh.mu.Lock()
		st.Len += sh.cache.Len()
		st.Hits += sh.hits
		st.Misses += sh.misses
		st.Evictions += sh.evictions
		sh.mu.Unlock()
	}
	return st
}
