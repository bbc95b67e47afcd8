// Package domain defines the core business entities for Holocron.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: One of the four catalog resource types
//   - CatalogRecord: A catalog entry merged from list and detail endpoints
//   - PageResult: One page of enriched records plus the page count
//   - QueryState: The immutable browse state (category, page, search)
//   - Session: The persisted authentication state (token, role)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
