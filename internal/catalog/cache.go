package catalog

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached catalog stays fresh.
const DefaultTTL = 5 * time.Minute

// Cache memoizes loader results. Implementations decide staleness from the
// stored timestamp; the loader never asks the backend for invalidation.
type Cache interface {
	// Get returns the cached sets and the time they were stored.
	// ok is false when the cache is empty.
	Get() (sets []QuestionSet, storedAt time.Time, ok bool)
	Set(sets []QuestionSet, storedAt time.Time)
	Clear()
}

// TTLCache is the standard Cache: a single slot with timestamp-based
// staleness. Safe for concurrent use.
type TTLCache struct {
	mu       sync.Mutex
	sets     []QuestionSet
	storedAt time.Time
	ok       bool
}

// NewTTLCache creates an empty TTLCache.
func NewTTLCache() *TTLCache {
	return &TTLCache{}
}

func (c *TTLCache) Get() ([]QuestionSet, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets, c.storedAt, c.ok
}

func (c *TTLCache) Set(sets []QuestionSet, storedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets = sets
	c.storedAt = storedAt
	c.ok = true
}

func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets = nil
	c.storedAt = time.Time{}
	c.ok = false
}
