package driven

import "github.com/holocron-labs/holocron-cli/internal/core/domain"

// SessionStore persists the authentication state between invocations.
// It is the single source of truth for "is the user authenticated".
type SessionStore interface {
	// Get returns the stored session. A missing session is not an
	// error: it returns a zero Session whose IsAuthenticated is false.
	Get() (domain.Session, error)

	// Set persists token and role together.
	Set(session domain.Session) error

	// Clear removes both fields. Subsequent Get calls return a zero
	// session.
	Clear() error
}
