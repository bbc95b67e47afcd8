package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driving"
	"github.com/holocron-labs/holocron-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// ConfigKeyCacheCategories lists the categories whose pages may be
// served from the cache. Other categories are always fetched fresh.
const ConfigKeyCacheCategories = "cache.categories"

// ConfigKeyPageLimit overrides the records-per-page count.
const ConfigKeyPageLimit = "catalog.page_limit"

// defaultCacheCategories applies when the config key is absent.
var defaultCacheCategories = []string{"people"}

// CatalogService answers page queries by combining the remote API,
// the page cache and the session store.
type CatalogService struct {
	api      driven.CatalogAPI
	sessions driven.SessionStore
	cache    driven.PageCache
	config   driven.ConfigStore
	history  driven.HistoryStore
}

// NewCatalogService creates a new catalog service.
// The config and history parameters are optional (can be nil).
func NewCatalogService(
	api driven.CatalogAPI,
	sessions driven.SessionStore,
	cache driven.PageCache,
	config driven.ConfigStore,
) *CatalogService {
	return &CatalogService{
		api:      api,
		sessions: sessions,
		cache:    cache,
		config:   config,
	}
}

// SetHistoryStore sets the store that records fetched pages.
func (s *CatalogService) SetHistoryStore(store driven.HistoryStore) {
	s.history = store
}

// FetchPage resolves one query to a page of enriched records.
func (s *CatalogService) FetchPage(
	ctx context.Context, query domain.QueryState,
) (*domain.PageResult, error) {
	logger.Section("Page Fetch")
	logger.Debug("Query: category=%s page=%d limit=%d search=%q",
		query.Category, query.Page, query.Limit, query.Search)

	if s.config != nil {
		if limit := s.config.GetInt(ConfigKeyPageLimit); limit > 0 {
			query.Limit = limit
		}
	}

	key := domain.CacheKey{
		Category: query.Category,
		Page:     query.Page,
		Search:   query.Search,
	}

	// Cache reads are gated per category and happen before the session
	// check, so a warm cache answers even without a token. Writes are
	// not gated.
	if s.cache != nil && s.cacheEligible(query.Category) {
		if page, ok := s.cache.Get(key); ok {
			logger.Info("Cache hit: %s", key)
			s.record(ctx, query, len(page.Results))
			return page, nil
		}
		logger.Debug("Cache miss: %s", key)
	}

	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	page, err := s.api.ListPage(
		ctx, session.Token, query.Category, query.Page, query.Limit, query.Search,
	)
	if err != nil {
		return nil, s.mapAPIError("list page", err)
	}

	logger.Debug("Fetched %d records, %d total pages", len(page.Results), page.TotalPages)

	s.enrich(ctx, session.Token, query.Category, page.Results)

	if s.cache != nil {
		s.cache.Put(key, page)
		logger.Debug("Cached: %s (%d entries total)", key, s.cache.Len())
	}

	s.record(ctx, query, len(page.Results))

	return page, nil
}

// LookupByID fetches a single record by numeric ID and shapes it as a
// one-page result.
func (s *CatalogService) LookupByID(
	ctx context.Context, category domain.Category, id int,
) (*domain.PageResult, error) {
	logger.Section("ID Lookup")
	logger.Debug("Lookup: category=%s id=%d", category, id)

	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	uid := strconv.Itoa(id)
	record, err := s.api.GetDetail(ctx, session.Token, category, uid)
	if err != nil {
		return nil, s.mapAPIError("get detail", err)
	}

	s.record(ctx, domain.QueryState{Category: category, Page: 1, Search: uid}, 1)

	return domain.Single(*record), nil
}

// requireSession loads the persisted session and rejects the call
// before any network traffic when there is none.
func (s *CatalogService) requireSession() (domain.Session, error) {
	session, err := s.sessions.Get()
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !session.IsAuthenticated() {
		logger.Debug("No session, refusing fetch")
		return domain.Session{}, domain.ErrNoSession
	}
	return session, nil
}

// enrich fetches the full property set for every record in place.
// Failures degrade the affected record to empty properties; the page
// itself never fails because of a detail fetch.
func (s *CatalogService) enrich(
	ctx context.Context, token string, category domain.Category, records []domain.CatalogRecord,
) {
	if len(records) == 0 {
		return
	}

	logger.Debug("Enriching %d records", len(records))

	var wg sync.WaitGroup
	wg.Add(len(records))

	for i := range records {
		go func(i int) {
			defer wg.Done()

			detail, err := s.api.GetDetail(ctx, token, category, records[i].UID)
			if err != nil {
				logger.Warn("Detail fetch failed for %s/%s: %v", category, records[i].UID, err)
				records[i] = records[i].Enrich(nil)
				return
			}
			records[i] = records[i].Enrich(detail.Properties)
		}(i)
	}

	wg.Wait()
}

// cacheEligible reports whether pages of a category may be read from
// the cache. The set comes from configuration and defaults to people.
func (s *CatalogService) cacheEligible(category domain.Category) bool {
	eligible := defaultCacheCategories
	if s.config != nil {
		if configured := s.config.GetStringSlice(ConfigKeyCacheCategories); configured != nil {
			eligible = configured
		}
	}

	for _, name := range eligible {
		if name == string(category) {
			return true
		}
	}
	return false
}

// mapAPIError translates transport errors into domain sentinels.
// An unauthorized response also clears the persisted session, so every
// later call fails fast with ErrNoSession instead of hitting the
// network again.
func (s *CatalogService) mapAPIError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		logger.Warn("Token rejected, clearing session")
		if clearErr := s.sessions.Clear(); clearErr != nil {
			logger.Warn("Clear session failed: %v", clearErr)
		}
		return domain.ErrUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// record appends a history entry, best effort.
func (s *CatalogService) record(ctx context.Context, query domain.QueryState, results int) {
	if s.history == nil {
		return
	}

	err := s.history.Append(ctx, driven.HistoryEntry{
		Category: string(query.Category),
		Page:     query.Page,
		Search:   query.Search,
		Results:  results,
	})
	if err != nil {
		logger.Warn("History append failed: %v", err)
	}
}
