package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/client/migrations"
	"github.com/dmitrijs2005/gophtasks/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded sqlite schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the sqlite database at dsn and
// brings its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// each connection would see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
