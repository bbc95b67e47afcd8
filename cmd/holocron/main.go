// Command holocron is an admin client for the Star Wars catalog server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/holocron-labs/holocron-cli/internal/adapters/driven/api/swapi"
	configfile "github.com/holocron-labs/holocron-cli/internal/adapters/driven/config/file"
	storagefile "github.com/holocron-labs/holocron-cli/internal/adapters/driven/storage/file"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driven/storage/memory"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driven/storage/sqlite"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/cli"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driven"
	"github.com/holocron-labs/holocron-cli/internal/core/services"
	"github.com/holocron-labs/holocron-cli/internal/logger"
)

// Config keys consumed at startup.
const (
	configKeyBaseURL     = "api.base_url"
	configKeyIdleTimeout = "session.idle_timeout"
)

func main() {
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap wires the adapters and services once global flags are
// parsed, so the --server override is known before the API client is
// built.
func bootstrap(serverURL string) error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}

	// Reload config edits while the TUI runs.
	go func() {
		if err := configStore.Watch(context.Background()); err != nil {
			logger.Warn("Config watch stopped: %v", err)
		}
	}()

	sessionStore, err := storagefile.NewSessionStore("")
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	baseURL := serverURL
	if baseURL == "" {
		baseURL = configStore.GetString(configKeyBaseURL)
	}
	apiClient := swapi.NewClient(swapi.Config{BaseURL: baseURL})

	authService := services.NewAuthService(apiClient, sessionStore)
	catalogService := services.NewCatalogService(
		apiClient, sessionStore, memory.NewPageCache(), configStore)

	// History prefers SQLite and degrades to memory for this run when
	// the database cannot be opened.
	var historyStore driven.HistoryStore
	if db, err := sqlite.NewStore(""); err != nil {
		logger.Warn("History database unavailable: %v", err)
		historyStore = memory.NewHistoryStore()
	} else {
		historyStore = db.HistoryStore()
	}
	catalogService.SetHistoryStore(historyStore)

	idleTimeout := services.DefaultIdleTimeout
	if minutes := configStore.GetInt(configKeyIdleTimeout); minutes > 0 {
		idleTimeout = time.Duration(minutes) * time.Minute
	}

	cli.SetAuthService(authService)
	cli.SetHistoryService(services.NewHistoryService(historyStore))
	cli.SetTUIConfig(&cli.TUIConfig{
		CatalogService: catalogService,
		AuthService:    authService,
		IdleTimeout:    idleTimeout,
	})

	return nil
}
