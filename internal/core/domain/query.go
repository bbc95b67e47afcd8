package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPageLimit is the fixed page size for list fetches.
const DefaultPageLimit = 10

// QueryState is the immutable browse state. Every user action derives a
// new value via the With* methods; each new value triggers exactly one
// fetch cycle.
type QueryState struct {
	// Category is the catalog category being browsed.
	Category Category

	// Page is the 1-based page number.
	Page int

	// Limit is the fixed page size.
	Limit int

	// Search is the effective search term applied to list queries.
	// Distinct from whatever is sitting in the input box until submit.
	Search string
}

// NewQueryState returns the initial browse state: people, page one,
// no search.
func NewQueryState() QueryState {
	return QueryState{Category: CategoryPeople, Page: 1, Limit: DefaultPageLimit}
}

// WithCategory switches category, resetting page and search.
func (q QueryState) WithCategory(c Category) QueryState {
	return QueryState{Category: c, Page: 1, Limit: q.Limit}
}

// WithPage moves to the given page, keeping category and search.
func (q QueryState) WithPage(page int) QueryState {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// WithSearch applies a name filter, resetting to page 1.
func (q QueryState) WithSearch(term string) QueryState {
	q.Search = term
	q.Page = 1
	return q
}

// CacheKey identifies one fetched page in the result cache.
type CacheKey struct {
	Category Category
	Page     int
	Search   string
}

// CacheKey derives the cache key for this state.
func (q QueryState) CacheKey() CacheKey {
	return CacheKey{Category: q.Category, Page: q.Page, Search: q.Search}
}

// String renders the key in category-page-search form.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s-%d-%s", k.Category, k.Page, k.Search)
}

// SearchKind classifies a submitted search term.
type SearchKind int

const (
	// SearchClear reverts to the unfiltered listing at page 1.
	SearchClear SearchKind = iota

	// SearchByID looks up a single record by its numeric uid.
	SearchByID

	// SearchByName filters the listing server-side by name.
	SearchByName
)

// SearchQuery is the outcome of resolving a raw search submission.
type SearchQuery struct {
	// Kind says how the term should be executed.
	Kind SearchKind

	// ID is the parsed numeric uid (SearchByID only).
	ID int

	// Term is the effective name filter (SearchByName only).
	Term string
}

// ResolveSearch classifies a raw search box submission. Empty input
// clears the filter; a term that parses as an integer is a direct ID
// lookup; anything else is a server-side name filter. Resolution runs on
// every submit, never per keystroke.
func ResolveSearch(raw string) SearchQuery {
	term := strings.TrimSpace(raw)
	if term == "" {
		return SearchQuery{Kind: SearchClear}
	}
	if id, err := strconv.Atoi(term); err == nil {
		return SearchQuery{Kind: SearchByID, ID: id}
	}
	return SearchQuery{Kind: SearchByName, Term: term}
}
