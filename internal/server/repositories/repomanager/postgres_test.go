package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := newPostgresRepositoryManager(db)

	if _, ok := m.Users().(*users.PostgresRepository); !ok {
		t.Fatalf("Users() = %T", m.Users())
	}
	if _, ok := m.Tasks().(*tasks.PostgresRepository); !ok {
		t.Fatalf("Tasks() = %T", m.Tasks())
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := newPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := newPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPostgresPing(t *testing.T) {
	db, mock := newDB(t)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("unreachable"))

	m := newPostgresRepositoryManager(db)
	if err := m.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestNewPostgresRepositoryManager_OpenError(t *testing.T) {
	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != "pgx" {
			t.Fatalf("driver = %q", driver)
		}
		return nil, errors.New("bad dsn")
	}
	defer func() { sqlOpen = orig }()

	if _, err := NewPostgresRepositoryManager("postgres://x"); err == nil {
		t.Fatal("expected error")
	}
}
