package cache

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"

	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/astro"
)

// item is a cached chart with its expiration
type item struct {
	chart     astro.Chart
	expiresAt time.Time
}

func (i *item) expired() bool {
	return time.Now().After(i.expiresAt)
}

// ChartCache provides thread-safe caching of computed charts with TTL.
// Chart computation is deterministic, so identical requests can share a
// result for as long as the entry lives.
type ChartCache struct {
	mu    sync.RWMutex
	items map[string]*item
	ttl   time.Duration

	hits   int64
	misses int64
}

// NewChartCache creates a cache with the specified TTL and starts its
// cleanup loop.
func NewChartCache(ttl time.Duration) *ChartCache {
	c := &ChartCache{
		items: make(map[string]*item),
		ttl:   ttl,
	}

	go c.cleanup()

	return c
}

// cleanup removes expired items periodically
func (c *ChartCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		for key, it := range c.items {
			if it.expired() {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}

// Key derives a consistent cache key from the fields that feed the
// computation. Identity fields like the name are included because they
// are echoed into the cached result.
func Key(in astro.Input) string {
	raw := fmt.Sprintf("%s|%s|%s|%s|%f|%f|%f|%s",
		in.Name, in.Sex, in.BirthDate, in.BirthTime,
		in.Timezone, in.Latitude, in.Longitude, in.Ayanamsa)
	return fmt.Sprintf("%x", md5.Sum([]byte(raw)))
}

// Get retrieves a chart from the cache
func (c *ChartCache) Get(key string) (astro.Chart, bool) {
	c.mu.RLock()
	it, exists := c.items[key]
	c.mu.RUnlock()

	if !exists || it.expired() {
		c.mu.Lock()
		if exists {
			delete(c.items, key)
		}
		c.misses++
		c.mu.Unlock()
		return astro.Chart{}, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()

	return it.chart, true
}

// Set stores a chart in the cache
func (c *ChartCache) Set(key string, chart astro.Chart) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &item{
		chart:     chart,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Stats returns cache statistics
func (c *ChartCache) Stats() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]any{
		"items":       len(c.items),
		"hits":        c.hits,
		"misses":      c.misses,
		"ttl_minutes": c.ttl.Minutes(),
	}
}
