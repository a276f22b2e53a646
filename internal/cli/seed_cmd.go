package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lentoflow/internal/domain"
)

// newSeedCmd creates a demo user with a handful of habits and a week of
// history, and prints a ready-to-use bearer token.
func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed a demo user with sample habits and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.Clock.Now().UTC()

			user := &domain.User{
				Username:          "demo",
				Email:             "demo@localhost",
				DailyEnergyBudget: domain.DefaultDailyEnergyBudget,
				MaxDailyTasks:     domain.DefaultMaxDailyTasks,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if err := app.Users.Create(ctx, user); err != nil {
				return fmt.Errorf("creating demo user: %w", err)
			}

			seeds := []struct {
				name     string
				cost     int
				interval int
				weight   int
				category string
				icon     string
				// local days ago of past completions
				doneDaysAgo []int
			}{
				{"跑步", 3, 2, 5, "health", "run", []int{2, 4, 6}},
				{"读书", 2, 1, 4, "mind", "book", []int{1, 2, 3, 5}},
				{"冥想", 1, 1, 3, "mind", "heart", []int{1, 3}},
				{"拉伸", 1, 2, 2, "health", "star", nil},
				{"写作", 4, 7, 4, "mind", "pen", []int{10}},
			}

			today := domain.DateOf(now, app.Cfg.Location)
			for _, seed := range seeds {
				task := &domain.Task{
					UserID:           user.ID,
					Name:             seed.name,
					EnergyCost:       seed.cost,
					ExpectedInterval: seed.interval,
					Importance:       seed.weight,
					Category:         seed.category,
					Color:            domain.DefaultTaskColor,
					Icon:             seed.icon,
					IsActive:         true,
					CreatedAt:        now.AddDate(0, -1, 0),
					UpdatedAt:        now,
				}
				if err := app.Tasks.Create(ctx, task); err != nil {
					return fmt.Errorf("creating task %q: %w", seed.name, err)
				}
				for _, daysAgo := range seed.doneDaysAgo {
					if err := seedCompletion(ctx, app, task.ID, today.AddDate(0, 0, -daysAgo)); err != nil {
						return fmt.Errorf("seeding completion for %q: %w", seed.name, err)
					}
				}
			}

			token := uuid.NewString()
			if err := app.Tokens.Create(ctx, token, user.ID, now); err != nil {
				return fmt.Errorf("creating demo token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded user %q with %d habits\ntoken: %s\n",
				user.Username, len(seeds), token)
			return nil
		},
	}
}

func seedCompletion(ctx context.Context, app *App, taskID int64, day time.Time) error {
	return app.Completions.Create(ctx, &domain.Completion{
		TaskID:      taskID,
		CompletedAt: day.Add(12 * time.Hour),
		CompletedOn: day,
	})
}
