// Package ttlcache provides a small in-memory TTL cache used by the
// evaluation engines for advisory memoization. A stale or cleared entry
// only means recomputation, never an invalid result, so there is no
// background eviction: expired entries are dropped on read or on Clear.
package ttlcache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a mutex-guarded map with a fixed per-cache TTL.
type Cache[V any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry[V]
}

// New creates a cache whose entries expire ttl after being set.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:  ttl,
		data: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key if present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache's TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.data[key] = entry[V]{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Clear drops every entry. Callers invalidate coarsely after writes rather
// than tracking fine-grained dependencies.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.data = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len returns the number of entries, counting expired ones not yet dropped.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
