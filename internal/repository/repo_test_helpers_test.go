package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lentoflow/internal/domain"
	"lentoflow/internal/testutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedUser(t *testing.T, database *sql.DB, opts ...testutil.UserOption) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(opts...)
	require.NoError(t, NewSQLiteUserRepo(database).Create(context.Background(), u))
	return u
}

func seedTask(t *testing.T, database *sql.DB, userID int64, name string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(userID, name, opts...)
	require.NoError(t, NewSQLiteTaskRepo(database).Create(context.Background(), task))
	return task
}
