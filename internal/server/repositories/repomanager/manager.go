// Package repomanager selects a storage backend from the configured DSN and
// vends the repositories bound to it.
package repomanager

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
)

// MemoryDSN selects the in-process store.
const MemoryDSN = "memory"

type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository
	// RunMigrations brings the schema (tables or indexes) up to date.
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New connects to the store named by dsn. dbName is only used by MongoDB.
func New(ctx context.Context, dsn, dbName string) (RepositoryManager, error) {
	switch {
	case dsn == MemoryDSN:
		return NewMemoryRepositoryManager(), nil
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return NewMongoRepositoryManager(ctx, dsn, dbName)
	default:
		return NewPostgresRepositoryManager(dsn)
	}
}
