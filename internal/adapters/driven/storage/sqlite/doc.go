// Package sqlite provides SQLite-backed storage.
//
// The store owns one database file under the holocron data directory
// and runs embedded SQL migrations on open. Schema versions are
// tracked in a schema_migrations table so upgrades are idempotent.
package sqlite
