// Package memory provides in-memory implementations of storage ports.
// Used as the production page cache and as fallbacks in tests and
// when persistent storage is unavailable.
package memory

import (
	"sync"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
)

// Ensure PageCache implements the interface.
var _ driven.PageCache = (*PageCache)(nil)

// PageCache is the process-lifetime page cache. It never evicts;
// the keyspace is bounded by how far a person can browse in one
// session.
type PageCache struct {
	mu    sync.RWMutex
	pages map[domain.CacheKey]*domain.PageResult
}

// NewPageCache creates an empty page cache.
func NewPageCache() *PageCache {
	return &PageCache{
		pages: make(map[domain.CacheKey]*domain.PageResult),
	}
}

// Get returns the cached page for a key, if present.
func (c *PageCache) Get(key domain.CacheKey) (*domain.PageResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page, ok := c.pages[key]
	return page, ok
}

// Put stores a page under a key, overwriting any prior entry.
func (c *PageCache) Put(key domain.CacheKey, page *domain.PageResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[key] = page
}

// Len returns the number of cached pages.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pages)
}
