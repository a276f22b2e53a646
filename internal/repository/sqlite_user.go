package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lentoflow/internal/db"
	"lentoflow/internal/domain"
)

const userColumns = `id, username, email, daily_energy_budget, max_daily_tasks, created_at, updated_at`

// SQLiteUserRepo implements UserRepo over a DBTX.
type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(dbtx db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: dbtx}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, email, daily_energy_budget, max_daily_tasks, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		u.Username,
		u.Email,
		u.DailyEnergyBudget,
		u.MaxDailyTasks,
		u.CreatedAt.UTC().Format(time.RFC3339),
		u.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading user id: %w", err)
	}
	u.ID = id
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username = ?, email = ?, daily_energy_budget = ?, max_daily_tasks = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		u.Username,
		u.Email,
		u.DailyEnergyBudget,
		u.MaxDailyTasks,
		u.UpdatedAt.UTC().Format(time.RFC3339),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", u.ID, ErrNotFound)
	}
	return nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var createdAt, updatedAt string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.DailyEnergyBudget, &u.MaxDailyTasks, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	u.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &u, nil
}
