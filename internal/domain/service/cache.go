package service

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"
)

type cacheEntry[V any] struct {
	hash  uint64
	value V
}

// Cache keeps one computed value per key together with the content hash of
// the inputs it was computed from. A lookup only hits when the hash matches;
// Put overwrites whatever the key held before.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry[V]
}

func NewCache[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]cacheEntry[V])}
}

func (c *Cache[V]) Get(key string, hash uint64) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || e.hash != hash {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) Put(key string, hash uint64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[V]{hash: hash, value: value}
}

func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// ContentHash hashes v by value; map ordering does not affect the result.
func ContentHash(v interface{}) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}
