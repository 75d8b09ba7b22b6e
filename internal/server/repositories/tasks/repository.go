// Package tasks provides the task store. Every query is scoped by owner id:
// a task that exists but belongs to someone else is indistinguishable from
// one that does not exist.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

type Repository interface {
	// Find returns the owner's tasks matching filter in store order. A nil
	// page returns every match.
	Find(ctx context.Context, filter models.TaskFilter, page *models.Page) ([]models.Task, error)
	Count(ctx context.Context, filter models.TaskFilter) (int64, error)
	FindOne(ctx context.Context, ownerID, id string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	// Save overwrites title, description and completed of an existing task
	// and bumps UpdatedAt. Returns common.ErrorNotFound if the task is gone.
	Save(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
}
