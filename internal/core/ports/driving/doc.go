// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them, and driving adapters (CLI commands, the
// TUI) call them.
//
//   - CatalogService: page fetching, searching, ID lookup
//   - AuthService: sign in, sign up, sign out, session inspection
//   - HistoryService: recorded browse history
//
// # Import Rules
//
//   - Can Import: domain and driven port packages
//   - Cannot Import: Any adapter package
package driving
