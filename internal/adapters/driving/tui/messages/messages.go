// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

// PageLoaded carries a fetched page back to the dashboard.
// Gen identifies which request produced it; the dashboard discards
// pages whose generation is no longer current.
type PageLoaded struct {
	Query domain.QueryState
	Page  *domain.PageResult
	Gen   int
	Err   error
}

// SessionExpired signals the session is gone and the dashboard must
// shut down. Reason is shown to the user on the way out.
type SessionExpired struct {
	Reason string
}

// Quit signals the application should exit.
type Quit struct{}
