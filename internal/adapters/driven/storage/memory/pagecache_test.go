package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

func TestPageCache_GetPut(t *testing.T) {
	cache := NewPageCache()
	key := domain.CacheKey{Category: domain.CategoryPeople, Page: 1}

	_, ok := cache.Get(key)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())

	page := &domain.PageResult{
		Results:    []domain.CatalogRecord{{UID: "1", Name: "Luke Skywalker"}},
		TotalPages: 9,
	}
	cache.Put(key, page)

	got, ok := cache.Get(key)
	assert.True(t, ok)
	assert.Same(t, page, got)
	assert.Equal(t, 1, cache.Len())
}

func TestPageCache_KeysAreDistinct(t *testing.T) {
	cache := NewPageCache()
	base := domain.CacheKey{Category: domain.CategoryPeople, Page: 1}

	cache.Put(base, &domain.PageResult{TotalPages: 1})
	cache.Put(domain.CacheKey{Category: domain.CategoryPeople, Page: 2}, &domain.PageResult{TotalPages: 1})
	cache.Put(domain.CacheKey{Category: domain.CategoryPeople, Page: 1, Search: "luke"}, &domain.PageResult{TotalPages: 1})
	cache.Put(domain.CacheKey{Category: domain.CategoryFilms, Page: 1}, &domain.PageResult{TotalPages: 1})

	assert.Equal(t, 4, cache.Len())
}

func TestPageCache_Overwrite(t *testing.T) {
	cache := NewPageCache()
	key := domain.CacheKey{Category: domain.CategoryPeople, Page: 1}

	cache.Put(key, &domain.PageResult{TotalPages: 1})
	replacement := &domain.PageResult{TotalPages: 2}
	cache.Put(key, replacement)

	got, ok := cache.Get(key)
	assert.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, 1, cache.Len())
}

func TestPageCache_ConcurrentAccess(t *testing.T) {
	cache := NewPageCache()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			key := domain.CacheKey{Category: domain.CategoryPeople, Page: page}
			cache.Put(key, &domain.PageResult{TotalPages: 10})
			cache.Get(key)
			cache.Len()
		}(i + 1)
	}
	wg.Wait()

	assert.Equal(t, 10, cache.Len())
}
