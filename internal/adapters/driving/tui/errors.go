package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingAuthService is returned when the auth service is not provided.
var ErrMissingAuthService = errors.New("tui: auth service is required")
