package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
)

func TestHistoryStore_AppendRecent(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	for _, search := range []string{"", "luke", "4"} {
		err := store.Append(ctx, driven.HistoryEntry{
			Category: "people",
			Page:     1,
			Search:   search,
			Results:  10,
		})
		require.NoError(t, err)
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "4", entries[0].Search)
	assert.Equal(t, "luke", entries[1].Search)
	assert.NotZero(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestHistoryStore_RecentOnEmpty(t *testing.T) {
	store := NewHistoryStore()

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, store.Close())
}
