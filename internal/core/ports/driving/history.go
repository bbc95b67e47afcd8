package driving

import (
	"context"

	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
)

// HistoryService exposes the recorded browse history.
type HistoryService interface {
	// Recent returns up to limit history entries, newest first.
	// Without a configured history store it returns an empty slice.
	Recent(ctx context.Context, limit int) ([]driven.HistoryEntry, error)
}
