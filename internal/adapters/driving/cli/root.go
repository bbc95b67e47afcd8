// Package cli wires the cobra command tree for the holocron binary.
//
// Services are injected by the composition root (cmd/holocron) before
// Execute runs. Commands check for nil services and fail with a clear
// message rather than panicking, which keeps the package testable
// without a full wiring.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/holocron-labs/holocron-cli/internal/core/ports/driving"
	"github.com/holocron-labs/holocron-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	verbose   bool
	serverURL string
)

// Services wired by the composition root.
var (
	authService    driving.AuthService
	historyService driving.HistoryService
)

// bootstrap, when set, runs once after global flags are parsed and
// before any command. The composition root uses it to build services
// with the --server override applied.
var bootstrap func(serverURL string) error

// rootCmd is the base command for the holocron CLI.
var rootCmd = &cobra.Command{
	Use:   "holocron",
	Short: "Administer the Star Wars catalog from the terminal",
	Long: `Holocron is an admin client for the Star Wars catalog server.

Sign in once, then browse people, films, starships and vehicles in an
interactive terminal UI with pagination, search by name or numeric ID,
and cached pages for snappy back-navigation.

Examples:
  # Sign in (prompts for credentials)
  holocron signin

  # Launch the interactive catalog browser
  holocron browse

  # Show the current session
  holocron status

  # Point at a different catalog server
  holocron --server https://staging.example.com/api browse`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if verbose {
			logger.SetVerbose(true)
		}
		if bootstrap != nil {
			return bootstrap(serverURL)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(
		&serverURL, "server", "", "catalog server base URL (overrides config)")
}

// SetBootstrap registers the wiring hook run before any command.
func SetBootstrap(fn func(serverURL string) error) {
	bootstrap = fn
}

// SetAuthService sets the authentication service used by the
// signin, signup, signout and status commands.
func SetAuthService(service driving.AuthService) {
	authService = service
}

// SetHistoryService sets the service backing the history command.
func SetHistoryService(service driving.HistoryService) {
	historyService = service
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
