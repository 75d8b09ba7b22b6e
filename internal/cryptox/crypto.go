// Package cryptox wraps the password hashing primitive used for user
// credentials. Hashes are bcrypt: salted and cost-factored.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost factor the user records were created with.
const DefaultCost = bcrypt.DefaultCost

// ErrMismatch is returned by CheckPassword when the password does not match.
var ErrMismatch = errors.New("password mismatch")

// HashPassword returns the bcrypt hash of password at the given cost.
// Costs outside bcrypt's range fall back to DefaultCost.
func HashPassword(password []byte, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// CheckPassword compares a stored hash with a candidate password.
// It returns ErrMismatch for a wrong password and a wrapped error when the
// stored hash itself is unusable.
func CheckPassword(hash, password []byte) error {
	err := bcrypt.CompareHashAndPassword(hash, password)
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("check password: %w", err)
}
