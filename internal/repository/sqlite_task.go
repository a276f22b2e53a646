package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lentoflow/internal/db"
	"lentoflow/internal/domain"
)

const taskColumns = `id, user_id, name, description, energy_cost, expected_interval, importance,
		category, color, icon, is_active, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a DBTX.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (user_id, name, description, energy_cost, expected_interval, importance,
		category, color, icon, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.UserID,
		t.Name,
		t.Description,
		t.EnergyCost,
		t.ExpectedInterval,
		t.Importance,
		t.Category,
		t.Color,
		t.Icon,
		boolToInt(t.IsActive),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	t.ID = id
	return nil
}

func (r *SQLiteTaskRepo) GetOwned(ctx context.Context, id, userID int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context, userID int64, filter TaskFilter) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if filter.Category != nil {
		query += ` AND category = ?`
		args = append(args, *filter.Category)
	}
	if filter.IsActive != nil {
		query += ` AND is_active = ?`
		args = append(args, boolToInt(*filter.IsActive))
	}
	query += ` ORDER BY id`
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, filter.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListActive(ctx context.Context, userID int64) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND is_active = 1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing active tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET name = ?, description = ?, energy_cost = ?, expected_interval = ?,
		importance = ?, category = ?, color = ?, icon = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Description,
		t.EnergyCost,
		t.ExpectedInterval,
		t.Importance,
		t.Category,
		t.Color,
		t.Icon,
		boolToInt(t.IsActive),
		t.UpdatedAt.UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var isActive int
	var createdAt, updatedAt string
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.EnergyCost, &t.ExpectedInterval,
		&t.Importance, &t.Category, &t.Color, &t.Icon, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.IsActive = intToBool(isActive)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var isActive int
		var createdAt, updatedAt string
		err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.EnergyCost, &t.ExpectedInterval,
			&t.Importance, &t.Category, &t.Color, &t.Icon, &isActive, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.IsActive = intToBool(isActive)
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
