package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/gophtasks/internal/client/client"
	"github.com/dmitrijs2005/gophtasks/internal/client/models"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	token string

	RegisterRet string
	RegisterErr error
	LoginRet    string
	LoginErr    error

	Tasks   []models.Task
	Page    *models.TaskPage
	Task    *models.Task
	Export  *models.Export
	TaskErr error

	LastPage, LastLimit int
	LastID              string
	LastPatch           models.TaskPatch
	LastQuery           string
	LastCompleted       *bool
	LastTitle, LastDesc string
}

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Register(_ context.Context, _, _, _ string) (string, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, _, _ string) (string, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListTasks(context.Context) ([]models.Task, error) {
	return f.Tasks, f.TaskErr
}

func (f *fakeClient) ListTasksPaged(_ context.Context, page, limit int) (*models.TaskPage, error) {
	f.LastPage, f.LastLimit = page, limit
	return f.Page, f.TaskErr
}

func (f *fakeClient) CreateTask(_ context.Context, title, description string) (*models.Task, error) {
	f.LastTitle, f.LastDesc = title, description
	return f.Task, f.TaskErr
}

func (f *fakeClient) UpdateTask(_ context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	f.LastID, f.LastPatch = id, patch
	return f.Task, f.TaskErr
}

func (f *fakeClient) DeleteTask(_ context.Context, id string) error {
	f.LastID = id
	return f.TaskErr
}

func (f *fakeClient) SearchTasks(_ context.Context, query string) ([]models.Task, error) {
	f.LastQuery = query
	return f.Tasks, f.TaskErr
}

func (f *fakeClient) FilterTasks(_ context.Context, completed *bool) ([]models.Task, error) {
	f.LastCompleted = completed
	return f.Tasks, f.TaskErr
}

func (f *fakeClient) ExportTasks(context.Context) (*models.Export, error) {
	return f.Export, f.TaskErr
}
