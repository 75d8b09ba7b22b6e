// Package metadata persists small client-side session values (the bearer
// token and the email it was issued for) in the local sqlite database so a
// login survives restarts.
package metadata

import "context"

// Well-known keys.
const (
	KeyToken = "token"
	KeyEmail = "email"
)

type Repository interface {
	// Get returns "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
