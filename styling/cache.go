package styling

import (
	"sync"
	"time"
)

// GenerationParams records what produced a cached value, mostly for
// debugging stale results.
type GenerationParams struct {
	UserID      string
	Occasion    string
	City        string
	NumOutfits  int
	FocusItemID string
}

type cacheEntry struct {
	value     []Outfit
	expiresAt time.Time
	params    GenerationParams
}

// ResultCache is a TTL + size-bounded cache for generated outfit lists.
// Eviction is LRU by last access time. Get and Set inspect and mutate
// the entry and access maps together, so everything runs under one
// mutex; the generator may be called from many request goroutines.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	data    map[string]cacheEntry
	access  map[string]time.Time
}

func NewResultCache(ttl time.Duration, maxSize int) *ResultCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if maxSize <= 0 {
		maxSize = 128
	}
	return &ResultCache{
		ttl:     ttl,
		maxSize: maxSize,
		data:    map[string]cacheEntry{},
		access:  map[string]time.Time{},
	}
}

// Get returns the cached value if present and not expired. Expired
// entries are evicted on the spot.
func (c *ResultCache) Get(key string) ([]Outfit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if entry.expiresAt.Before(now) {
		delete(c.data, key)
		delete(c.access, key)
		return nil, false
	}
	c.access[key] = now
	return entry.value, true
}

// Set stores a value, evicting the least-recently-accessed entry first
// when the cache is full.
func (c *ResultCache) Set(key string, value []Outfit, params GenerationParams) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if len(c.data) >= c.maxSize {
		oldestKey := ""
		var oldestTime time.Time
		for k, t := range c.access {
			if oldestKey == "" || t.Before(oldestTime) {
				oldestKey = k
				oldestTime = t
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
			delete(c.access, oldestKey)
		}
	}

	c.data[key] = cacheEntry{value: value, expiresAt: now.Add(c.ttl), params: params}
	c.access[key] = now
}

func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = map[string]cacheEntry{}
	c.access = map[string]time.Time{}
}
