package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron-labs/holocron-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "holocron", rootCmd.Use)
}

func TestRootCmd_HasGlobalFlags(t *testing.T) {
	verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag, "verbose flag should exist")
	assert.Equal(t, "v", verboseFlag.Shorthand)

	serverFlag := rootCmd.PersistentFlags().Lookup("server")
	require.NotNil(t, serverFlag, "server flag should exist")
}

func TestRootCmd_HelpListsCommands(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	for _, name := range []string{"signin", "signup", "signout", "status", "browse", "history", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestRootCmd_LongNamesTheCategories(t *testing.T) {
	for _, name := range []string{"people", "films", "starships", "vehicles"} {
		assert.Contains(t, rootCmd.Long, name)
	}
}

func TestRootCmd_VerboseFlagEnablesLogging(t *testing.T) {
	defer func() {
		verbose = false
		logger.SetVerbose(false)
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--verbose", "version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_BootstrapReceivesServerFlag(t *testing.T) {
	var gotServer string
	SetBootstrap(func(serverURL string) error {
		gotServer = serverURL
		return nil
	})
	defer func() {
		bootstrap = nil
		serverURL = ""
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--server", "https://staging.example.com/api", "version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api", gotServer)
}
