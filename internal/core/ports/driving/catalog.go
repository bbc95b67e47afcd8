package driving

import (
	"context"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

// CatalogService answers page queries against the remote catalog.
type CatalogService interface {
	// FetchPage resolves one query to a page of enriched records.
	// Cached pages are served without touching the network. A missing
	// session returns domain.ErrNoSession before any request is made;
	// a rejected token returns domain.ErrUnauthorized.
	FetchPage(ctx context.Context, query domain.QueryState) (*domain.PageResult, error)

	// LookupByID fetches the single record with the given numeric ID.
	// The result is shaped as a one-record, one-page PageResult so the
	// caller renders it like any other page. An unknown ID returns
	// domain.ErrNotFound.
	LookupByID(ctx context.Context, category domain.Category, id int) (*domain.PageResult, error)
}
