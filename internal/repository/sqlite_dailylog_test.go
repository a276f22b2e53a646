package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lentoflow/internal/domain"
	"lentoflow/internal/testutil"
)

func TestDailyLogRepo_UpsertInsertsThenUpdates(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDailyLogRepo(database)
	ctx := context.Background()

	user := seedUser(t, database)
	today := day(2026, 8, 26)

	score := 75.0
	health := 68.9
	require.NoError(t, repo.Upsert(ctx, &domain.DailyLog{
		UserID:         user.ID,
		LogDate:        today,
		EnergySpent:    5,
		TasksCompleted: 2,
		DailyScore:     &score,
		OverallHealth:  &health,
	}))

	score2 := 110.5
	require.NoError(t, repo.Upsert(ctx, &domain.DailyLog{
		UserID:         user.ID,
		LogDate:        today,
		EnergySpent:    8,
		TasksCompleted: 3,
		DailyScore:     &score2,
		OverallHealth:  &health,
	}))

	logs, err := repo.ListRange(ctx, user.ID, today, today)
	require.NoError(t, err)
	require.Len(t, logs, 1, "upsert must not create a second row for the same day")
	assert.Equal(t, 8, logs[0].EnergySpent)
	assert.Equal(t, 3, logs[0].TasksCompleted)
	require.NotNil(t, logs[0].DailyScore)
	assert.InDelta(t, 110.5, *logs[0].DailyScore, 1e-9)
}

func TestDailyLogRepo_ListRange_OrdersByDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDailyLogRepo(database)
	ctx := context.Background()

	user := seedUser(t, database)
	require.NoError(t, repo.Upsert(ctx, &domain.DailyLog{UserID: user.ID, LogDate: day(2026, 8, 25)}))
	require.NoError(t, repo.Upsert(ctx, &domain.DailyLog{UserID: user.ID, LogDate: day(2026, 8, 23)}))
	require.NoError(t, repo.Upsert(ctx, &domain.DailyLog{UserID: user.ID, LogDate: day(2026, 8, 24)}))

	logs, err := repo.ListRange(ctx, user.ID, day(2026, 8, 23), day(2026, 8, 25))
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, day(2026, 8, 23), logs[0].LogDate)
	assert.Equal(t, day(2026, 8, 25), logs[2].LogDate)

	// Nil rollups survive the round trip.
	assert.Nil(t, logs[0].DailyScore)
	assert.Nil(t, logs[0].OverallHealth)
}
