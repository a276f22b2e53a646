package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lentoflow/internal/db"
)

// SQLiteTokenRepo implements TokenRepo over a DBTX. Token issuance policy
// (expiry, revocation UX) lives outside this service; the table only maps
// opaque bearer tokens to user IDs.
type SQLiteTokenRepo struct {
	db db.DBTX
}

func NewSQLiteTokenRepo(dbtx db.DBTX) *SQLiteTokenRepo {
	return &SQLiteTokenRepo{db: dbtx}
}

func (r *SQLiteTokenRepo) Create(ctx context.Context, token string, userID int64, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO api_tokens (token, user_id, created_at) VALUES (?, ?, ?)`,
		token, userID, now.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting api token: %w", err)
	}
	return nil
}

func (r *SQLiteTokenRepo) Resolve(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id FROM api_tokens WHERE token = ?`, token).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("api token: %w", ErrNotFound)
		}
		return 0, fmt.Errorf("resolving api token: %w", err)
	}
	return userID, nil
}
