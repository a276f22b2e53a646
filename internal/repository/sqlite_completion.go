package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lentoflow/internal/db"
	"lentoflow/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo over a DBTX.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

func NewSQLiteCompletionRepo(dbtx db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: dbtx}
}

func (r *SQLiteCompletionRepo) Create(ctx context.Context, c *domain.Completion) error {
	query := `INSERT INTO completions (task_id, completed_at, completed_on, note, mood)
		VALUES (?, ?, ?, ?, ?)`
	var mood any
	if c.Mood != nil {
		mood = *c.Mood
	}
	res, err := r.db.ExecContext(ctx, query,
		c.TaskID,
		c.CompletedAt.UTC().Format(time.RFC3339),
		formatDate(c.CompletedOn),
		c.Note,
		mood,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("task %d on %s: %w", c.TaskID, formatDate(c.CompletedOn), ErrDuplicateCompletion)
		}
		return fmt.Errorf("inserting completion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading completion id: %w", err)
	}
	c.ID = id
	return nil
}

func (r *SQLiteCompletionRepo) DeleteOn(ctx context.Context, taskID int64, day time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM completions WHERE task_id = ? AND completed_on = ?`,
		taskID, formatDate(day))
	if err != nil {
		return false, fmt.Errorf("deleting completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteCompletionRepo) ListByTask(ctx context.Context, taskID int64) ([]*domain.Completion, error) {
	query := `SELECT id, task_id, completed_at, completed_on, note, mood
		FROM completions WHERE task_id = ? ORDER BY completed_at`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var completions []*domain.Completion
	for rows.Next() {
		var c domain.Completion
		var completedAt, completedOn string
		var mood sql.NullInt64
		if err := rows.Scan(&c.ID, &c.TaskID, &completedAt, &completedOn, &c.Note, &mood); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		c.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		if d, err := parseDate(completedOn); err == nil {
			c.CompletedOn = d
		}
		if mood.Valid {
			m := int(mood.Int64)
			c.Mood = &m
		}
		completions = append(completions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return completions, nil
}

func (r *SQLiteCompletionRepo) SummarizeByUser(ctx context.Context, userID int64, today time.Time) (map[int64]CompletionSummary, error) {
	query := `SELECT c.task_id, MAX(c.completed_on), MAX(c.completed_on = ?)
		FROM completions c
		JOIN tasks t ON c.task_id = t.id
		WHERE t.user_id = ?
		GROUP BY c.task_id`
	rows, err := r.db.QueryContext(ctx, query, formatDate(today), userID)
	if err != nil {
		return nil, fmt.Errorf("summarizing completions: %w", err)
	}
	defer rows.Close()

	summaries := make(map[int64]CompletionSummary)
	for rows.Next() {
		var s CompletionSummary
		var lastDone sql.NullString
		var completedToday int
		if err := rows.Scan(&s.TaskID, &lastDone, &completedToday); err != nil {
			return nil, fmt.Errorf("scanning completion summary: %w", err)
		}
		s.LastDone = parseNullableDate(lastDone)
		s.CompletedToday = intToBool(completedToday)
		summaries[s.TaskID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completion summaries: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteCompletionRepo) ListRange(ctx context.Context, userID int64, from, to time.Time) ([]CompletionDetail, error) {
	query := `SELECT c.task_id, c.completed_on, t.energy_cost
		FROM completions c
		JOIN tasks t ON c.task_id = t.id
		WHERE t.user_id = ? AND c.completed_on >= ? AND c.completed_on <= ?
		ORDER BY c.completed_on`
	rows, err := r.db.QueryContext(ctx, query, userID, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing completions in range: %w", err)
	}
	defer rows.Close()

	var details []CompletionDetail
	for rows.Next() {
		var d CompletionDetail
		var completedOn string
		if err := rows.Scan(&d.TaskID, &completedOn, &d.EnergyCost); err != nil {
			return nil, fmt.Errorf("scanning completion detail: %w", err)
		}
		day, err := parseDate(completedOn)
		if err != nil {
			return nil, fmt.Errorf("parsing completion date %q: %w", completedOn, err)
		}
		d.CompletedOn = day
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completion details: %w", err)
	}
	return details, nil
}

func (r *SQLiteCompletionRepo) LastDoneBefore(ctx context.Context, userID int64, day time.Time) (map[int64]time.Time, error) {
	query := `SELECT c.task_id, MAX(c.completed_on)
		FROM completions c
		JOIN tasks t ON c.task_id = t.id
		WHERE t.user_id = ? AND c.completed_on <= ?
		GROUP BY c.task_id`
	rows, err := r.db.QueryContext(ctx, query, userID, formatDate(day))
	if err != nil {
		return nil, fmt.Errorf("loading last completion dates: %w", err)
	}
	defer rows.Close()

	lastDone := make(map[int64]time.Time)
	for rows.Next() {
		var taskID int64
		var on string
		if err := rows.Scan(&taskID, &on); err != nil {
			return nil, fmt.Errorf("scanning last completion date: %w", err)
		}
		d, err := parseDate(on)
		if err != nil {
			return nil, fmt.Errorf("parsing completion date %q: %w", on, err)
		}
		lastDone[taskID] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating last completion dates: %w", err)
	}
	return lastDone, nil
}
