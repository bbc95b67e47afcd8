package memory

import (
	"context"
	"sync"
	"time"

	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps browse history in memory. Used as the fallback
// when the SQLite store cannot be opened.
type HistoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	entries []driven.HistoryEntry
}

// NewHistoryStore creates an empty history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{nextID: 1}
}

// Append records one entry, assigning ID and CreatedAt.
func (s *HistoryStore) Append(_ context.Context, entry driven.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	entry.CreatedAt = time.Now()
	s.nextID++
	s.entries = append(s.entries, entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]driven.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}

	recent := make([]driven.HistoryEntry, 0, limit)
	for i := len(s.entries) - 1; i >= len(s.entries)-limit; i-- {
		recent = append(recent, s.entries[i])
	}
	return recent, nil
}

// Close is a no-op.
func (s *HistoryStore) Close() error {
	return nil
}
