// Package auth issues and verifies the bearer tokens handed to clients
// after a successful login.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the owning user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// GenerateToken signs an HS256 token for userID valid for validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString and returns the user id it binds.
// Expired tokens yield common.ErrTokenExpired; every other failure
// (malformed, wrong signature, wrong algorithm, no user id) yields
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
