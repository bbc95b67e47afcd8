package driven

import "github.com/holocron-labs/holocron-cli/internal/core/domain"

// PageCache memoizes fetched pages by (category, page, search) key.
// Entries are appended or overwritten, never evicted; the cache lives
// and dies with the process. Writes to the same key are idempotent
// given identical inputs, so last-write-wins is safe.
type PageCache interface {
	// Get returns the cached page for a key, if present.
	Get(key domain.CacheKey) (*domain.PageResult, bool)

	// Put stores a page under a key, overwriting any prior entry.
	Put(key domain.CacheKey, page *domain.PageResult)

	// Len returns the number of cached pages.
	Len() int
}
