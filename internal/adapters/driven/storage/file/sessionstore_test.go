package file

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	// No file yet: zero session, no error.
	session, err := store.Get()
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())

	require.NoError(t, store.Set(domain.Session{Token: "tok-123", Role: "admin"}))

	session, err = store.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "admin", session.Role)
	assert.True(t, session.IsAuthenticated())
}

func TestSessionStore_Clear(t *testing.T) {
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(domain.Session{Token: "tok", Role: "admin"}))
	require.NoError(t, store.Clear())

	session, err := store.Get()
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "clear removes the file")

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestSessionStore_FilePermissions(t *testing.T) {
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(domain.Session{Token: "tok", Role: "admin"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
