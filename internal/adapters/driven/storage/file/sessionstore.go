// Package file provides file-based session storage.
//
// The session lives in ~/.holocron/session.toml with restrictive
// permissions, so the token survives process restarts but stays out
// of other users' reach.
package file

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore persists the session as a TOML file.
type SessionStore struct {
	filePath string
}

// NewSessionStore creates a new file-based session store.
// If configDir is empty, defaults to ~/.holocron/session.toml.
func NewSessionStore(configDir string) (*SessionStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".holocron")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SessionStore{
		filePath: filepath.Join(configDir, "session.toml"),
	}, nil
}

// Get returns the stored session. A missing file yields a zero
// session, not an error.
func (s *SessionStore) Get() (domain.Session, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Session{}, nil
		}
		return domain.Session{}, err
	}

	var session domain.Session
	if err := toml.Unmarshal(data, &session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Set persists the session with restricted permissions.
func (s *SessionStore) Set(session domain.Session) error {
	data, err := toml.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Clear removes the session file. Clearing an absent session is fine.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.filePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the session file path.
func (s *SessionStore) Path() string {
	return s.filePath
}
