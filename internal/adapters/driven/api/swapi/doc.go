// Package swapi implements the CatalogAPI port against the Star Wars
// catalog REST service.
//
// The adapter owns everything transport: URL construction, bearer
// tokens, request throttling, wire formats and the translation of
// HTTP status codes into domain errors. Nothing above it knows HTTP
// exists.
package swapi
