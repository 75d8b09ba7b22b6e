package tasks

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps tasks in insertion order in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks []models.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func matches(t *models.Task, f models.TaskFilter) bool {
	if t.UserID != f.OwnerID {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(t.Title), q) && !strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	return true
}

func (r *MemoryRepository) Find(ctx context.Context, filter models.TaskFilter, page *models.Page) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Task, 0)
	var skipped int64
	for i := range r.tasks {
		if !matches(&r.tasks[i], filter) {
			continue
		}
		if page != nil {
			if skipped < page.Offset {
				skipped++
				continue
			}
			if int64(len(result)) >= page.Limit {
				break
			}
		}
		result = append(result, r.tasks[i])
	}
	return result, nil
}

func (r *MemoryRepository) Count(ctx context.Context, filter models.TaskFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for i := range r.tasks {
		if matches(&r.tasks[i], filter) {
			n++
		}
	}
	return n, nil
}

// index returns the position of the owner's task or -1. Caller holds mu.
func (r *MemoryRepository) index(ownerID, id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].UserID == ownerID {
			return i
		}
	}
	return -1
}

func (r *MemoryRepository) FindOne(ctx context.Context, ownerID, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(ownerID, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	t := r.tasks[i]
	return &t, nil
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.tasks = append(r.tasks, *task)
	return task, nil
}

func (r *MemoryRepository) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(task.UserID, task.ID)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	stored := &r.tasks[i]
	stored.Title = task.Title
	stored.Description = task.Description
	stored.Completed = task.Completed
	stored.UpdatedAt = time.Now().UTC()

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(ownerID, id)
	if i < 0 {
		return common.ErrorNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}
