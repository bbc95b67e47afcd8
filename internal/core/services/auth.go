package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driving"
	"github.com/holocron-labs/holocron-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService manages sign in, sign up and the persisted session.
type AuthService struct {
	api      driven.CatalogAPI
	sessions driven.SessionStore
}

// NewAuthService creates a new auth service.
func NewAuthService(api driven.CatalogAPI, sessions driven.SessionStore) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
	}
}

// SignIn validates credentials, exchanges them with the server and
// persists the returned session.
func (s *AuthService) SignIn(
	ctx context.Context, username, password string,
) (*domain.Session, error) {
	logger.Section("Sign In")
	logger.Debug("Username: %q", username)

	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	session, err := s.api.SignIn(ctx, username, password)
	if err != nil {
		logger.Warn("Sign in rejected: %v", err)
		return nil, fmt.Errorf("sign in: %w", err)
	}

	if err := s.sessions.Set(*session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	logger.Info("Signed in with role %q", session.Role)
	return session, nil
}

// SignUp validates credentials and registers an account. The server's
// confirmation message is returned; no session is created.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (string, error) {
	logger.Section("Sign Up")
	logger.Debug("Username: %q", username)

	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	message, err := s.api.SignUp(ctx, username, password)
	if err != nil {
		logger.Warn("Sign up rejected: %v", err)
		return "", fmt.Errorf("sign up: %w", err)
	}

	logger.Info("Signed up: %s", message)
	return message, nil
}

// SignOut clears the persisted session.
func (s *AuthService) SignOut() error {
	logger.Debug("Clearing session")
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Session returns the persisted session, which may be zero.
func (s *AuthService) Session() (domain.Session, error) {
	return s.sessions.Get()
}

// validateCredentials wraps the first field error in ErrInvalidInput.
func validateCredentials(username, password string) error {
	errs := domain.ValidateCredentials(username, password)
	if errs.OK() {
		return nil
	}

	message := errs.Username
	if message == "" {
		message = errs.Password
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, message)
}

// IsInvalidInput reports whether an error came from local credential
// validation rather than the server.
func IsInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput)
}
