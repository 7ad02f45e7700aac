package rerank

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/cbouillon/frrerank/model"
)

// cacheEntry is a cached reply plus the wall-clock time it was inserted.
type cacheEntry struct {
	reply    model.Reply
	cachedAt time.Time
}

// ResultCache is the TTL- and capacity-bounded reply cache of spec §4.9.
// Eviction is a size-triggered sweep of expired entries on insert, not
// LRU: there is no per-entry recency tracking (spec §9 design note).
type ResultCache struct {
	mu       sync.Mutex
	entries  map[uint64]cacheEntry
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// NewResultCache builds a ResultCache with the given capacity and TTL.
func NewResultCache(capacity int, ttl time.Duration) *ResultCache {
	return &ResultCache{
		entries:  make(map[uint64]cacheEntry),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// CacheKey digests a query string plus its canonicalized options into a
// single cache key (spec §4.9).
func CacheKey(query string, options model.Options) uint64 {
	maxDistance := 0
	if options.MaxDistance != nil {
		maxDistance = *options.MaxDistance
	}

	canonical, err := json.Marshal(struct {
		Limit       int         `json:"limit"`
		MaxDistance int         `json:"max_distance"`
		Filters     interface{} `json:"filters,omitempty"`
	}{options.Limit, maxDistance, options.Filters})
	if err != nil {
		canonical = []byte(strconv.Itoa(options.Limit) + ":" + strconv.Itoa(maxDistance))
	}

	h := xxhash.New()
	_, _ = h.WriteString(query)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(canonical)
	return h.Sum64()
}

// Get returns the cached reply for key if present and not yet expired.
func (c *ResultCache) Get(key uint64) (model.Reply, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return model.Reply{}, false
	}
	if c.now().Sub(entry.cachedAt) >= c.ttl {
		return model.Reply{}, false
	}
	return entry.reply, true
}

// Put inserts reply under key, sweeping expired entries first if the
// cache is at capacity.
func (c *ResultCache) Put(key uint64, reply model.Reply) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.capacity {
		c.sweepExpiredLocked()
	}
	c.entries[key] = cacheEntry{reply: reply, cachedAt: c.now()}
}

// Clear empties the cache.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]cacheEntry)
}

// Stats reports the cache's current size, configured capacity, and TTL in
// seconds, for the cache_stats admin endpoint (spec §6).
func (c *ResultCache) Stats() (size, maxSize int, ttlSeconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), c.capacity, int(c.ttl.Seconds())
}

func (c *ResultCache) sweepExpiredLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.cachedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}
