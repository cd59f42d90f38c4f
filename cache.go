package cmsconsole

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/cmsconsole/views"
)

// StatsCache holds the dashboard counters for a short TTL so the dashboard
// does not hit three CMS endpoints on every visit.
type StatsCache struct {
	mu      sync.RWMutex
	stats   views.DashboardStats
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	load    func(ctx context.Context) (views.DashboardStats, error)
}

// NewStatsCache creates a StatsCache filled by load.
func NewStatsCache(load func(ctx context.Context) (views.DashboardStats, error), ttl time.Duration) *StatsCache {
	return &StatsCache{load: load, ttl: ttl}
}

func (c *StatsCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *StatsCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}

// Get returns the counters, reloading them when stale. It tries a read lock
// first; only takes a write lock if a reload is needed. Failed loads are
// not cached.
func (c *StatsCache) Get(ctx context.Context) (views.DashboardStats, error) {
	c.mu.RLock()
	if c.valid() {
		stats := c.stats
		c.mu.RUnlock()
		return stats, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.stats, nil
	}
	stats, err := c.load(ctx)
	if err != nil {
		return views.DashboardStats{}, err
	}
	c.stats = stats
	c.loaded = true
	c.fetched = time.Now()
	return stats, nil
}
