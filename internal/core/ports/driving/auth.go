package driving

import (
	"context"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

// AuthService manages the authentication lifecycle.
type AuthService interface {
	// SignIn validates credentials locally, exchanges them with the
	// server and persists the returned session.
	SignIn(ctx context.Context, username, password string) (*domain.Session, error)

	// SignUp validates credentials locally and registers an account.
	// It returns the server's confirmation message; no session is
	// created.
	SignUp(ctx context.Context, username, password string) (string, error)

	// SignOut clears the persisted session. Signing out while signed
	// out is not an error.
	SignOut() error

	// Session returns the persisted session, which may be zero.
	Session() (domain.Session, error)
}
