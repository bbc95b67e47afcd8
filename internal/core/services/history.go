package services

import (
	"context"
	"fmt"

	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes the recorded browse history.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
// The store parameter is optional (can be nil).
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to limit entries, newest first. Without a store
// it returns an empty slice.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]driven.HistoryEntry, error) {
	if s.store == nil {
		return []driven.HistoryEntry{}, nil
	}

	entries, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	return entries, nil
}
