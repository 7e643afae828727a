// Package client contains the backend API building blocks of the burger
// constructor client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): catalog,
//     feed and profile order reads, order submission and the identity calls
//     (register, login, user fetch/update, logout, password reset).
//  2. A concrete REST implementation (see HTTPClient) that encodes JSON
//     requests, attaches the access token taken from a TokenSource and maps
//     failures to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Server failures are returned as *APIError, whose text is the server message.
// Callers match the class with errors.Is: ErrUnauthorized, ErrAPI, and
// ErrUnavailable for transport failures.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
