package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("api.url", "https://example.com"))
	require.NoError(t, store.Set("browse.limit", 25))
	require.NoError(t, store.Set("tui.enabled", true))
	require.NoError(t, store.Set("cache.categories", []string{"people", "films"}))

	assert.Equal(t, "https://example.com", store.GetString("api.url"))
	assert.Equal(t, 25, store.GetInt("browse.limit"))
	assert.True(t, store.GetBool("tui.enabled"))
	assert.Equal(t, []string{"people", "films"}, store.GetStringSlice("cache.categories"))

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "a string"))

	assert.Equal(t, 0, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Nil(t, store.GetStringSlice("key"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("cache.categories", []string{"people"}))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"people"}, reopened.GetStringSlice("cache.categories"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nurl = \"https://example.com\"\n"), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", store.GetString("api.url"))
	assert.Equal(t, path, store.Path())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx)
	}()

	// Give the watcher time to arm before touching the file.
	time.Sleep(100 * time.Millisecond)

	err = os.WriteFile(store.Path(), []byte("[api]\nurl = \"https://changed.example.com\"\n"), 0600)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return store.GetString("api.url") == "https://changed.example.com"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
