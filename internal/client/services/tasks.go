package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/client/client"
	"github.com/dmitrijs2005/gophtasks/internal/client/models"
	"github.com/dmitrijs2005/gophtasks/internal/client/state"
	"github.com/dmitrijs2005/gophtasks/internal/filex"
	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/dmitrijs2005/gophtasks/internal/netx"
)

type TaskService interface {
	Load(ctx context.Context) state.Msg
	LoadPage(ctx context.Context, page, limit int) state.Msg
	Create(ctx context.Context, title, description string) state.Msg
	Update(ctx context.Context, id string, patch models.TaskPatch) state.Msg
	Delete(ctx context.Context, id string) state.Msg
	Search(ctx context.Context, query string) state.Msg
	Filter(ctx context.Context, completed *bool) state.Msg
	Export(ctx context.Context) state.Msg
	// SaveExport downloads an export and writes it to path.
	SaveExport(ctx context.Context, exp models.Export, path string) error
}

type taskService struct {
	client   client.Client
	logger   logging.Logger
	download func(ctx context.Context, url string) ([]byte, error)
}

func NewTaskService(c client.Client, l logging.Logger) TaskService {
	return &taskService{client: c, logger: l, download: netx.Download}
}

func (s *taskService) failed(ctx context.Context, op string, err error) state.Msg {
	s.logger.Debug(ctx, op+" failed", "error", err)
	return state.TasksFailed{Err: messageOf(err)}
}

func (s *taskService) Load(ctx context.Context) state.Msg {
	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return s.failed(ctx, "list", err)
	}
	return state.TasksLoaded{Tasks: tasks}
}

func (s *taskService) LoadPage(ctx context.Context, page, limit int) state.Msg {
	p, err := s.client.ListTasksPaged(ctx, page, limit)
	if err != nil {
		return s.failed(ctx, "paginate", err)
	}
	return state.PageLoaded{Page: *p}
}

func (s *taskService) Create(ctx context.Context, title, description string) state.Msg {
	t, err := s.client.CreateTask(ctx, title, description)
	if err != nil {
		return s.failed(ctx, "create", err)
	}
	return state.TaskCreated{Task: *t}
}

func (s *taskService) Update(ctx context.Context, id string, patch models.TaskPatch) state.Msg {
	t, err := s.client.UpdateTask(ctx, id, patch)
	if err != nil {
		return s.failed(ctx, "update", err)
	}
	return state.TaskUpdated{Task: *t}
}

func (s *taskService) Delete(ctx context.Context, id string) state.Msg {
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return s.failed(ctx, "delete", err)
	}
	return state.TaskDeleted{ID: id}
}

func (s *taskService) Search(ctx context.Context, query string) state.Msg {
	tasks, err := s.client.SearchTasks(ctx, query)
	if err != nil {
		return s.failed(ctx, "search", err)
	}
	return state.SearchLoaded{Tasks: tasks}
}

// Filter replaces the full list, as a plain load does.
func (s *taskService) Filter(ctx context.Context, completed *bool) state.Msg {
	tasks, err := s.client.FilterTasks(ctx, completed)
	if err != nil {
		return s.failed(ctx, "filter", err)
	}
	return state.TasksLoaded{Tasks: tasks}
}

func (s *taskService) Export(ctx context.Context) state.Msg {
	exp, err := s.client.ExportTasks(ctx)
	if err != nil {
		return s.failed(ctx, "export", err)
	}
	return state.TasksExported{Export: *exp}
}

func (s *taskService) SaveExport(ctx context.Context, exp models.Export, path string) error {
	b, err := s.download(ctx, exp.URL)
	if err != nil {
		return fmt.Errorf("download export: %w", err)
	}
	if err := filex.WriteFileAtomic(path, b); err != nil {
		return fmt.Errorf("save export: %w", err)
	}
	return nil
}
