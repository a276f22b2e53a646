package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"lentoflow/internal/contract"
	"lentoflow/internal/domain"
	"lentoflow/internal/engine"
	"lentoflow/internal/repository"
)

const dateLayout = "2006-01-02"

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }

// loadStates joins the user's active tasks with their completion summary into
// the transient states the engine consumes. A single point-in-time read.
func loadStates(ctx context.Context, tasks repository.TaskRepo, completions repository.CompletionRepo, userID int64, today time.Time) ([]domain.TaskState, error) {
	active, err := tasks.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing active tasks: %w", err)
	}
	summaries, err := completions.SummarizeByUser(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("summarizing completions: %w", err)
	}

	states := make([]domain.TaskState, 0, len(active))
	for _, t := range active {
		s := domain.TaskState{
			ID:               t.ID,
			Name:             t.Name,
			EnergyCost:       t.EnergyCost,
			ExpectedInterval: t.ExpectedInterval,
			Importance:       t.Importance,
			Color:            t.Color,
			Icon:             t.Icon,
		}
		if sum, ok := summaries[t.ID]; ok {
			s.LastDone = sum.LastDone
			s.IsCompletedToday = sum.CompletedToday
		}
		states = append(states, s)
	}
	return states, nil
}

func completedOf(states []domain.TaskState) []domain.TaskState {
	var completed []domain.TaskState
	for _, s := range states {
		if s.IsCompletedToday {
			completed = append(completed, s)
		}
	}
	return completed
}

func toTaskView(s domain.TaskState, today time.Time) contract.TaskView {
	v := contract.TaskView{
		ID:               s.ID,
		Name:             s.Name,
		EnergyCost:       s.EnergyCost,
		Urgency:          s.Urgency,
		UrgencyLevel:     engine.LevelOf(s.Urgency),
		Health:           s.Health,
		ExpectedInterval: s.ExpectedInterval,
		IsCompletedToday: s.IsCompletedToday,
		Icon:             s.Icon,
		Color:            s.Color,
	}
	if s.LastDone != nil {
		d := s.LastDone.Format(dateLayout)
		v.LastDone = &d
		n := domain.DaysBetween(*s.LastDone, today)
		v.DaysSince = &n
	}
	return v
}

func toTaskViews(states []domain.TaskState, today time.Time) []contract.TaskView {
	views := make([]contract.TaskView, 0, len(states))
	for _, s := range states {
		views = append(views, toTaskView(s, today))
	}
	return views
}

// refreshDailyLog recomputes and upserts the cached rollup for (user, today).
// Called after every successful mark/undo, inside the same transaction.
func refreshDailyLog(ctx context.Context, tasks repository.TaskRepo, completions repository.CompletionRepo, logs repository.DailyLogRepo, user *domain.User, today time.Time) error {
	states, err := loadStates(ctx, tasks, completions, user.ID, today)
	if err != nil {
		return err
	}
	engine.Annotate(states, today)

	entry := &domain.DailyLog{UserID: user.ID, LogDate: today}
	if completed := completedOf(states); len(completed) > 0 {
		score := engine.ScoreDay(completed, user.DailyEnergyBudget)
		entry.EnergySpent = score.EnergySpent
		entry.TasksCompleted = score.TasksCompleted
		total := score.TotalScore
		entry.DailyScore = &total
	}
	overall := engine.AggregateHealth(states)
	health := overall.Score
	entry.OverallHealth = &health

	if err := logs.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("upserting daily log: %w", err)
	}
	return nil
}
