package client

import (
	"context"

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
)

type Client interface {
	// SetToken sets the bearer token sent with task requests. Empty clears it.
	SetToken(token string)
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListTasksPaged(ctx context.Context, page, limit int) (*models.TaskPage, error)
	CreateTask(ctx context.Context, title, description string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	SearchTasks(ctx context.Context, query string) ([]models.Task, error)
	// FilterTasks with nil returns every task.
	FilterTasks(ctx context.Context, completed *bool) ([]models.Task, error)
	ExportTasks(ctx context.Context) (*models.Export, error)
}
