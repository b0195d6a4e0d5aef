package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Columns updatable through updateColumn. Only these constants ever reach
// the fmt.Sprintf below; no user input is interpolated into SQL.
const (
	columnStatus   = "status"
	columnPriority = "priority"
	columnText     = "text"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns all tasks belonging to ownerID, oldest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query :=
		`SELECT id, user_id, text, status, priority, created_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Text, &item.Status, &item.Priority, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a task for task.UserID. The COALESCE arms mirror the
// column defaults: a nil status/priority takes the default, a provided
// value (including the empty string) is stored as-is.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task, status, priority *string) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (id, user_id, text, status, priority)
		 VALUES ($1, $2, $3, COALESCE($4, 'pending'), COALESCE($5, 'medium'))
		 RETURNING status, priority, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Text, status, priority).
		Scan(&task.Status, &task.Priority, &task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes the task matching (id, ownerID). Zero rows affected is
// not an error: deleting a missing or foreign task is a silent no-op.
func (r *PostgresRepository) Delete(ctx context.Context, id string, ownerID string) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, ownerID string, status string) (*models.Task, error) {
	return r.updateColumn(ctx, columnStatus, status, id, ownerID)
}

func (r *PostgresRepository) UpdatePriority(ctx context.Context, id string, ownerID string, priority string) (*models.Task, error) {
	return r.updateColumn(ctx, columnPriority, priority, id, ownerID)
}

func (r *PostgresRepository) UpdateText(ctx context.Context, id string, ownerID string, text string) (*models.Task, error) {
	return r.updateColumn(ctx, columnText, text, id, ownerID)
}

// updateColumn sets exactly one column on the task matching (id, ownerID)
// and returns the updated row. A task that does not exist, or belongs to
// someone else, yields common.ErrorNotFound.
func (r *PostgresRepository) updateColumn(ctx context.Context, column string, value string, id string, ownerID string) (*models.Task, error) {
	query := fmt.Sprintf(
		`UPDATE tasks SET %s = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, user_id, text, status, priority, created_at
		 `, column)

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, value, id, ownerID).
		Scan(&task.ID, &task.UserID, &task.Text, &task.Status, &task.Priority, &task.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}
