package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
)

// Paging bounds. Out-of-range values are clamped rather than rejected.
const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

const (
	MsgTitleRequired = "Title is required"
	MsgQueryRequired = "Search query is required"
	MsgTaskNotFound  = "Task not found or not authorized"
)

// TaskService implements task operations. Every method is scoped to the
// ownerID it is given.
type TaskService struct {
	repomanager repomanager.RepositoryManager
}

func NewTaskService(m repomanager.RepositoryManager) *TaskService {
	return &TaskService{repomanager: m}
}

func notFound(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.NewError(common.ErrorNotFound, MsgTaskNotFound)
	}
	return err
}

func (s *TaskService) find(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.repomanager.Tasks().Find(ctx, filter, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching tasks: %w", err)
	}
	return tasks, nil
}

// List returns all of the owner's tasks in store order.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	return s.find(ctx, models.TaskFilter{OwnerID: ownerID})
}

// ClampPage normalises paging input.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// ListPaged returns one page of the owner's tasks plus totals.
func (s *TaskService) ListPaged(ctx context.Context, ownerID string, page, limit int) (*models.TaskPage, error) {
	page, limit = ClampPage(page, limit)
	filter := models.TaskFilter{OwnerID: ownerID}
	repo := s.repomanager.Tasks()

	tasks, err := repo.Find(ctx, filter, &models.Page{
		Offset: int64(page-1) * int64(limit),
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching paginated tasks: %w", err)
	}

	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error counting tasks: %w", err)
	}

	return &models.TaskPage{
		Tasks:       tasks,
		CurrentPage: page,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		TotalTasks:  total,
	}, nil
}

// Create stores a new incomplete task.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string) (*models.Task, error) {
	if title == "" {
		return nil, common.NewError(common.ErrValidation, MsgTitleRequired)
	}

	task, err := s.repomanager.Tasks().Create(ctx, &models.Task{
		Title:       title,
		Description: description,
		UserID:      ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

// Update applies the supplied fields of patch to the owner's task.
func (s *TaskService) Update(ctx context.Context, ownerID, id string, patch models.TaskPatch) (*models.Task, error) {
	repo := s.repomanager.Tasks()

	task, err := repo.FindOne(ctx, ownerID, id)
	if err != nil {
		return nil, notFound(err)
	}

	patch.Apply(task)

	saved, err := repo.Save(ctx, task)
	if err != nil {
		return nil, notFound(err)
	}
	return saved, nil
}

// Remove deletes the owner's task.
func (s *TaskService) Remove(ctx context.Context, ownerID, id string) error {
	if err := s.repomanager.Tasks().Delete(ctx, ownerID, id); err != nil {
		return notFound(err)
	}
	return nil
}

// Search returns the owner's tasks whose title or description contains
// query, ignoring case. The query is matched literally.
func (s *TaskService) Search(ctx context.Context, ownerID, query string) ([]models.Task, error) {
	if query == "" {
		return nil, common.NewError(common.ErrValidation, MsgQueryRequired)
	}
	return s.find(ctx, models.TaskFilter{OwnerID: ownerID, Query: query})
}

// Filter returns the owner's tasks with the given completion state, or all
// of them when completed is nil.
func (s *TaskService) Filter(ctx context.Context, ownerID string, completed *bool) ([]models.Task, error) {
	return s.find(ctx, models.TaskFilter{OwnerID: ownerID, Completed: completed})
}
