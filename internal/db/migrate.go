package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Statements are idempotent so re-running on an
// existing database is safe.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		username            TEXT NOT NULL UNIQUE,
		email               TEXT NOT NULL UNIQUE,
		daily_energy_budget INTEGER NOT NULL DEFAULT 15,
		max_daily_tasks     INTEGER NOT NULL DEFAULT 5,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id           INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		energy_cost       INTEGER NOT NULL,
		expected_interval INTEGER NOT NULL,
		importance        INTEGER NOT NULL,
		category          TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '#6366f1',
		icon              TEXT NOT NULL DEFAULT 'star',
		is_active         INTEGER NOT NULL DEFAULT 1,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	// completed_on is the user-local calendar date of completed_at. The
	// unique constraint is the durable at-most-once-per-day gate; two
	// concurrent mark-done requests race on this index and exactly one wins.
	`CREATE TABLE IF NOT EXISTS completions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id      INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		completed_at TEXT NOT NULL,
		completed_on TEXT NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		mood         INTEGER,
		UNIQUE(task_id, completed_on)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_task_at ON completions(task_id, completed_at)`,
	`CREATE TABLE IF NOT EXISTS daily_logs (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id         INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		log_date        TEXT NOT NULL,
		energy_spent    INTEGER NOT NULL DEFAULT 0,
		tasks_completed INTEGER NOT NULL DEFAULT 0,
		daily_score     REAL,
		overall_health  REAL,
		UNIQUE(user_id, log_date)
	)`,
	`CREATE TABLE IF NOT EXISTS api_tokens (
		token      TEXT PRIMARY KEY,
		user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL
	)`,
}
