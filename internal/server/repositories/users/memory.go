package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. It backs the "memory"
// DSN and service tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrConflict
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	return user, nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *stored
	return &u, nil
}
