package repository

import (
	"sync"
	"time"

	"portfolio/internal/model"
)

type cacheEntry struct {
	data     interface{}
	storedAt time.Time
}

// Cache holds validated section data for a limited time. A TTL of zero
// disables caching: every entry is stale as soon as it is written.
type Cache struct {
	mu      sync.RWMutex
	entries map[model.Section]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates a cache; now defaults to time.Now when nil.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{entries: map[model.Section]cacheEntry{}, ttl: ttl, now: now}
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get returns the entry for key if it is younger than the TTL.
func (c *Cache) Get(key model.Section) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		c.mu.Lock()
		// another reader may have refreshed it meanwhile
		if cur, ok := c.entries[key]; ok && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.data, true
}

// Set stores data under key stamped with the current time.
func (c *Cache) Set(key model.Section, data interface{}) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{data: data, storedAt: c.now()}
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = map[model.Section]cacheEntry{}
	c.mu.Unlock()
}

// Len reports how many entries are held, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
