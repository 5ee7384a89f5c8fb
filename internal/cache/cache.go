package cache

import (
	"sync"
	"sync/atomic"
)

// Cache is a generic thread-safe LRU cache bounded by entry count and by
// total cost. When either bound is exceeded the least recently used
// entries are evicted.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	recency ring[K, V]

	maxLen  int // 0 means unlimited
	maxCost int // 0 means unlimited
	cost    int

	onEvict func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry[K comparable, V any] struct {
	key        K
	value      V
	cost       int
	prev, next *entry[K, V]
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithMaxCost bounds the sum of entry costs.
func WithMaxCost[K comparable, V any](n int) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.maxCost = n
	}
}

// WithEvict registers a callback run for every evicted entry. The callback
// runs with the cache locked and must not call back into the cache.
func WithEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// New creates a cache holding at most maxLen entries.
// A maxLen of 0 means unlimited.
func New[K comparable, V any](maxLen int, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		maxLen:  maxLen,
	}
	c.recency.init()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	c.recency.touch(e)
	return e.value, true
}

// Peek is Get without touching recency or statistics.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value with the given cost, replacing any previous entry.
func (c *Cache[K, V]) Set(key K, value V, cost int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value, cost)
}

// GetOrCreate returns the cached value or creates and stores it.
// create runs under the lock so concurrent callers never create twice.
// Errors are returned to the caller and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, int, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits.Add(1)
		c.recency.touch(e)
		return e.value, nil
	}
	c.misses.Add(1)

	value, cost, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.set(key, value, cost)
	return value, nil
}

// Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V, cost int) {
	if e, ok := c.entries[key]; ok {
		c.cost += cost - e.cost
		e.value, e.cost = value, cost
		c.recency.touch(e)
	} else {
		e := &entry[K, V]{key: key, value: value, cost: cost}
		c.entries[key] = e
		c.recency.touch(e)
		c.cost += cost
	}
	c.evict(key)
}

// evict drops least recently used entries until both bounds hold. The
// entry for keep is never evicted, so a single oversized entry survives.
// Caller must hold c.mu.
func (c *Cache[K, V]) evict(keep K) {
	for (c.maxLen > 0 && len(c.entries) > c.maxLen) || (c.maxCost > 0 && c.cost > c.maxCost) {
		e := c.recency.oldest()
		if e == nil || e.key == keep {
			return
		}
		c.recency.unlink(e)
		delete(c.entries, e.key)
		c.cost -= e.cost
		c.evictions.Add(1)
		if c.onEvict != nil {
			c.onEvict(e.key, e.value)
		}
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.recency.unlink(e)
	delete(c.entries, key)
	c.cost -= e.cost
	return true
}

// Clear removes all entries from the cache. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.recency.init()
	c.cost = 0
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
	n, cost := len(c.entries), c.cost
	c.mu.Unlock()

	s := Stats{
		Len:       n,
		Capacity:  c.maxLen,
		Cost:      cost,
		MaxCost:   c.maxCost,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the entry limit, 0 if unlimited.
	Capacity int
	// Cost is the sum of entry costs.
	Cost int
	// MaxCost is the cost limit, 0 if unlimited.
	MaxCost int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped to honor the limits.
	Evictions uint64
}
