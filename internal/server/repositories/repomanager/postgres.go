package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/server/migrations"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing one pool.
type PostgresRepositoryManager struct {
	db    *sql.DB
	users *users.PostgresRepository
	tasks *tasks.PostgresRepository
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return newPostgresRepositoryManager(db), nil
}

func newPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		tasks: tasks.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Users() users.Repository { return m.users }

func (m *PostgresRepositoryManager) Tasks() tasks.Repository { return m.tasks }

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Close(ctx context.Context) error {
	return m.db.Close()
}
