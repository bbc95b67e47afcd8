package driven

import (
	"context"
	"time"
)

// HistoryEntry is one recorded browse or search action.
type HistoryEntry struct {
	ID        int64
	Category  string
	Page      int
	Search    string
	Results   int
	CreatedAt time.Time
}

// HistoryStore records browse history. Implementations may be backed
// by SQLite or kept in memory; a nil store disables history entirely.
type HistoryStore interface {
	// Append records one entry. The store assigns ID and CreatedAt.
	Append(ctx context.Context, entry HistoryEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)

	// Close releases the underlying storage.
	Close() error
}
