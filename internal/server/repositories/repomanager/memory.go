package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory; data is lost on exit.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	tasks *tasks.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		tasks: tasks.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Tasks() tasks.Repository { return m.tasks }

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Ping(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close(ctx context.Context) error { return nil }
