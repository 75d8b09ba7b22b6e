// Package users provides the credential store: persistence of user records
// keyed by a store-assigned id and a unique email.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

// Repository persists users. Lookups return common.ErrorNotFound when no
// record matches; Create returns common.ErrConflict on a duplicate email.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
