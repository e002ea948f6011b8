package cache

import (
	"sync"
	"time"
)

type entry struct {
	body []byte
	exp  time.Time
}

// Cache holds rendered fragments by name for a fixed TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (c *Cache) Get(name string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[name]
	if !ok || time.Now().After(e.exp) {
		return nil, false
	}
	return e.body, true
}

// Set stores a copy of body. A zero TTL disables caching.
func (c *Cache) Set(name string, body []byte) {
	if c.ttl <= 0 {
		return
	}

	b := make([]byte, len(body))
	copy(b, body)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[name] = entry{body: b, exp: time.Now().Add(c.ttl)}
}

func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
