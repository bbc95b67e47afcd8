// Package tui provides the interactive catalog dashboard.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"time"

	"github.com/holocron-labs/holocron-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog answers page queries and ID lookups.
	Catalog driving.CatalogService

	// Auth manages the persisted session.
	Auth driving.AuthService

	// IdleTimeout is how long the dashboard may sit without input
	// before it signs the user out. Zero means the default.
	IdleTimeout time.Duration
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(catalog driving.CatalogService, auth driving.AuthService) *Ports {
	return &Ports{
		Catalog: catalog,
		Auth:    auth,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Auth == nil {
		return ErrMissingAuthService
	}
	return nil
}
