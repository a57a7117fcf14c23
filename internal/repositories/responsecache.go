package repositories

import (
	"sync"
	"time"

	"feeds.xdoubleu.com/internal/models"
)

type cacheEntry struct {
	response  *models.CachedResponse
	expiresAt time.Time
}

// MemoryResponseCache is the in-process stand-in for the platform
// edge cache. Entries expire after ttl, which covers the freshness
// window plus the stale-while-revalidate allowance; expired entries
// are dropped lazily on read.
type MemoryResponseCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func NewMemoryResponseCache(ttl time.Duration) *MemoryResponseCache {
	return &MemoryResponseCache{
		ttl:     ttl,
		entries: map[string]cacheEntry{},
	}
}

func (cache *MemoryResponseCache) Get(key string) (*models.CachedResponse, bool) {
	cache.mu.RLock()
	entry, ok := cache.entries[key]
	cache.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		cache.mu.Lock()
		delete(cache.entries, key)
		cache.mu.Unlock()
		return nil, false
	}

	return entry.response, true
}

func (cache *MemoryResponseCache) Set(key string, response *models.CachedResponse) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.entries[key] = cacheEntry{
		response:  response,
		expiresAt: time.Now().Add(cache.ttl),
	}
}
