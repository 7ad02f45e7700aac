package rerank

import (
	"testing"
	"time"

	"github.com/cbouillon/frrerank/model"
)

func intPtr(v int) *int { return &v }

func TestCacheRoundTrip(t *testing.T) {
	c := NewResultCache(10, time.Hour)
	key := CacheKey("paris", model.Options{Limit: 10, MaxDistance: intPtr(4)})

	if _, ok := c.Get(key); ok {
		t.Fatal("expected a miss before any insert")
	}

	reply := model.Reply{Total: 1}
	c.Put(key, reply)

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected a hit after insert")
	}
	if got.Total != 1 {
		t.Errorf("Total = %d, want 1", got.Total)
	}
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	a := CacheKey("paris", model.Options{Limit: 10, MaxDistance: intPtr(4)})
	b := CacheKey("paris", model.Options{Limit: 20, MaxDistance: intPtr(4)})
	if a == b {
		t.Error("expected different options to produce different cache keys")
	}
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	c := NewResultCache(10, time.Millisecond)
	frozen := time.Now()
	c.now = func() time.Time { return frozen }

	key := CacheKey("paris", model.Options{Limit: 10})
	c.Put(key, model.Reply{Total: 1})

	c.now = func() time.Time { return frozen.Add(time.Second) }
	if _, ok := c.Get(key); ok {
		t.Error("expected the entry to have expired")
	}
}

func TestCacheStats(t *testing.T) {
	c := NewResultCache(5, time.Hour)
	c.Put(CacheKey("a", model.Options{}), model.Reply{})
	c.Put(CacheKey("b", model.Options{}), model.Reply{})

	size, maxSize, ttl := c.Stats()
	if size != 2 {
		t.Errorf("size = %d, want 2", size)
	}
	if maxSize != 5 {
		t.Errorf("maxSize = %d, want 5", maxSize)
	}
	if ttl != 3600 {
		t.Errorf("ttl = %d, want 3600", ttl)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewResultCache(5, time.Hour)
	c.Put(CacheKey("a", model.Options{}), model.Reply{})
	c.Clear()

	size, _, _ := c.Stats()
	if size != 0 {
		t.Errorf("size = %d, want 0 after Clear", size)
	}
}
