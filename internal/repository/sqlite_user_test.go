package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lentoflow/internal/testutil"
)

func TestUserRepo_CreateAndGetByID(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(database)
	ctx := context.Background()

	user := testutil.NewTestUser()
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, fetched.Username)
	assert.Equal(t, 15, fetched.DailyEnergyBudget)
	assert.Equal(t, 5, fetched.MaxDailyTasks)
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(database)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(database)
	ctx := context.Background()

	user := seedUser(t, database)
	user.DailyEnergyBudget = 20
	user.MaxDailyTasks = 3
	user.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, user))

	fetched, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, fetched.DailyEnergyBudget)
	assert.Equal(t, 3, fetched.MaxDailyTasks)
}

func TestTokenRepo_CreateAndResolve(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTokenRepo(database)
	ctx := context.Background()

	user := seedUser(t, database)
	require.NoError(t, repo.Create(ctx, "tok-abc123", user.ID, time.Now()))

	resolved, err := repo.Resolve(ctx, "tok-abc123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved)

	_, err = repo.Resolve(ctx, "tok-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}
