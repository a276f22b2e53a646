package repository

import (
	"context"
	"fmt"
	"time"

	"lentoflow/internal/db"
	"lentoflow/internal/domain"
)

// SQLiteDailyLogRepo implements DailyLogRepo over a DBTX.
type SQLiteDailyLogRepo struct {
	db db.DBTX
}

func NewSQLiteDailyLogRepo(dbtx db.DBTX) *SQLiteDailyLogRepo {
	return &SQLiteDailyLogRepo{db: dbtx}
}

func (r *SQLiteDailyLogRepo) Upsert(ctx context.Context, l *domain.DailyLog) error {
	query := `INSERT INTO daily_logs (user_id, log_date, energy_spent, tasks_completed, daily_score, overall_health)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, log_date) DO UPDATE SET
			energy_spent = excluded.energy_spent,
			tasks_completed = excluded.tasks_completed,
			daily_score = excluded.daily_score,
			overall_health = excluded.overall_health`
	var score, health any
	if l.DailyScore != nil {
		score = *l.DailyScore
	}
	if l.OverallHealth != nil {
		health = *l.OverallHealth
	}
	_, err := r.db.ExecContext(ctx, query,
		l.UserID, formatDate(l.LogDate), l.EnergySpent, l.TasksCompleted, score, health)
	if err != nil {
		return fmt.Errorf("upserting daily log: %w", err)
	}
	return nil
}

func (r *SQLiteDailyLogRepo) ListRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.DailyLog, error) {
	query := `SELECT id, user_id, log_date, energy_spent, tasks_completed, daily_score, overall_health
		FROM daily_logs
		WHERE user_id = ? AND log_date >= ? AND log_date <= ?
		ORDER BY log_date`
	rows, err := r.db.QueryContext(ctx, query, userID, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.DailyLog
	for rows.Next() {
		var l domain.DailyLog
		var logDate string
		var score, health *float64
		if err := rows.Scan(&l.ID, &l.UserID, &logDate, &l.EnergySpent, &l.TasksCompleted, &score, &health); err != nil {
			return nil, fmt.Errorf("scanning daily log: %w", err)
		}
		day, err := parseDate(logDate)
		if err != nil {
			return nil, fmt.Errorf("parsing log date %q: %w", logDate, err)
		}
		l.LogDate = day
		l.DailyScore = score
		l.OverallHealth = health
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily logs: %w", err)
	}
	return logs, nil
}
