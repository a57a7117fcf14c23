package repositories

import (
	"time"

	"feeds.xdoubleu.com/internal/models"
)

// ResponseCache is the edge-cache collaborator: a response store
// keyed by full request identity. The core only decides when to read
// and write it; eviction and durability belong to the implementation.
type ResponseCache interface {
	Get(key string) (*models.CachedResponse, bool)
	Set(key string, response *models.CachedResponse)
}

type Repositories struct {
	Responses ResponseCache
}

func New(ttl time.Duration) *Repositories {
	return &Repositories{
		Responses: NewMemoryResponseCache(ttl),
	}
}
