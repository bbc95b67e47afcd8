// Package file provides file-based configuration storage.
//
// Configuration lives in ~/.holocron/config.toml with restrictive
// permissions. Keys are exposed in dot notation (e.g. cache.categories)
// regardless of how the TOML nests them. An optional watcher reloads
// the store when the file changes on disk.
package file
