package swapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

// APIError is a non-2xx response from the catalog service.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog API %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("catalog API %d: %s", e.StatusCode, e.URL)
}

// Unwrap maps well-known status codes to domain sentinels so callers
// can use errors.Is without importing this package.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}

// IsUnauthorized reports whether an error is a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// IsNotFound reports whether an error is a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
