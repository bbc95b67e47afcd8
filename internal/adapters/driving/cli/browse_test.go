package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseCmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "browse" {
			found = true
			break
		}
	}
	assert.True(t, found, "browse command should be registered")
}

func TestBrowseCmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive catalog browser", browseCmd.Short)
}

func TestBrowseCmd_LongDescription(t *testing.T) {
	assert.Contains(t, browseCmd.Long, "terminal UI")
	assert.Contains(t, browseCmd.Long, "Controls:")
}

func TestSetTUIConfig(t *testing.T) {
	config := &TUIConfig{
		AuthService: &mockAuthService{},
		IdleTimeout: 15 * time.Minute,
	}

	SetTUIConfig(config)

	assert.Equal(t, config, tuiConfig)

	// Cleanup
	tuiConfig = nil
}

func TestBrowseCmd_HelpOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"browse", "--help"})
	defer func() {
		rootCmd.SetArgs(nil)
		// Reset the persistent help flag so later Execute calls on
		// browseCmd don't short-circuit to help output.
		_ = browseCmd.Flags().Set("help", "false")
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "terminal UI")
	assert.Contains(t, output, "Controls:")
}

func TestBrowseCmd_MissingServices(t *testing.T) {
	oldConfig := tuiConfig
	tuiConfig = nil
	defer func() {
		tuiConfig = oldConfig
	}()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"browse"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}
