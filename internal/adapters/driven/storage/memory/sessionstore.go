package memory

import (
	"sync"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore keeps the session in memory. Used in tests and when
// the config directory is unwritable.
type SessionStore struct {
	mu      sync.RWMutex
	session domain.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns the stored session, which may be zero.
func (s *SessionStore) Get() (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, nil
}

// Set stores the session.
func (s *SessionStore) Set(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

// Clear resets the session to zero.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	return nil
}
