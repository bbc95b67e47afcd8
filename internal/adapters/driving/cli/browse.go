package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driving"
)

// TUIConfig holds the services the browse command hands to the TUI.
type TUIConfig struct {
	CatalogService driving.CatalogService
	AuthService    driving.AuthService
	IdleTimeout    time.Duration
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive catalog browser",
	Long: `Launch the interactive terminal UI for browsing the catalog.

Requires a stored session; sign in first with 'holocron signin'.
After 15 minutes without a keypress the session is discarded and the
browser exits.

Controls:
  Tab/Shift+Tab - Switch category
  ←/→, p/n      - Previous / next page
  /             - Search by name or numeric ID
  Enter         - Submit search
  Esc           - Cancel search
  r             - Reload current page
  s             - Toggle the category sidebar
  ?             - Show all keybindings
  x             - Sign out
  q             - Quit`,
	RunE: runBrowse,
}

// SetTUIConfig sets the configuration for the browse command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a TUI crash still restores the terminal output
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports.Catalog = tuiConfig.CatalogService
		ports.Auth = tuiConfig.AuthService
		ports.IdleTimeout = tuiConfig.IdleTimeout
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// The alternate screen is gone by now, so the exit reason needs
	// restating.
	if notice := app.Notice(); notice != "" {
		cmd.Println(notice)
	}
	return nil
}
