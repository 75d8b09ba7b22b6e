package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/dbx"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/google/uuid"
)

const taskColumns = `id, user_id, title, description, completed, created_at, updated_at`

// PostgresRepository implements task storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// where renders the filter as a WHERE body with positional args starting at $1.
func where(f models.TaskFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{f.OwnerID}

	if f.Completed != nil {
		args = append(args, *f.Completed)
		conds = append(conds, fmt.Sprintf("completed = $%d", len(args)))
	}
	if f.Query != "" {
		args = append(args, "%"+likeEscaper.Replace(f.Query)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	return strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) Find(ctx context.Context, filter models.TaskFilter, page *models.Page) ([]models.Task, error) {
	cond, args := where(filter)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + cond + ` ORDER BY created_at, id`
	if page != nil {
		args = append(args, page.Limit, page.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, filter models.TaskFilter) (int64, error) {
	cond, args := where(filter)
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE `+cond, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) FindOne(ctx context.Context, ownerID, id string) (*models.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	t := &models.Task{}
	if err := scanTask(r.db.QueryRowContext(ctx, query, id, ownerID), t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (user_id, title, description, completed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, task.UserID, task.Title, task.Description, task.Completed).
		Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	if _, err := uuid.Parse(task.ID); err != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`UPDATE tasks SET title = $1, description = $2, completed = $3, updated_at = now()
		 WHERE id = $4 AND user_id = $5
		 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, task.Title, task.Description, task.Completed, task.ID, task.UserID).
		Scan(&task.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner, t *models.Task) error {
	return s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
}
