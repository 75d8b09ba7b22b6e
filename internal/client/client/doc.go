// Package client contains client-side building blocks for GophTasks.
//
// # Overview
//
// The package provides:
//  1. An API contract (see the Client interface) covering every REST route:
//     Register, Login, task CRUD, paging, search, filter and export.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the
//     bearer token and maps non-2xx responses to *APIError.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Responses with status 401 wrap
// ErrUnauthorized. Every non-2xx response is an *APIError carrying the
// server-provided message.
package client
