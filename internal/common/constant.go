// Package common contains shared constants and sentinel errors used across
// GophTasks components.
package common

// AuthorizationHeaderName carries the bearer token on every task request.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName is echoed back on every response and used as the
// error code of internal failures.
const RequestIDHeaderName = "X-Request-ID"
