package service

import (
	"context"
	"fmt"
	"time"

	"lentoflow/internal/contract"
	"lentoflow/internal/db"
	"lentoflow/internal/domain"
	"lentoflow/internal/engine"
	"lentoflow/internal/repository"
)

// TodayServiceImpl composes the daily snapshot and serializes completion
// mutations through the unit of work.
type TodayServiceImpl struct {
	users       repository.UserRepo
	tasks       repository.TaskRepo
	completions repository.CompletionRepo
	uow         db.UnitOfWork
	clock       Clock
	loc         *time.Location
	observer    UseCaseObserver
}

func NewTodayService(
	users repository.UserRepo,
	tasks repository.TaskRepo,
	completions repository.CompletionRepo,
	uow db.UnitOfWork,
	clock Clock,
	loc *time.Location,
	observer UseCaseObserver,
) *TodayServiceImpl {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &TodayServiceImpl{
		users:       users,
		tasks:       tasks,
		completions: completions,
		uow:         uow,
		clock:       clock,
		loc:         loc,
		observer:    observer,
	}
}

// View builds the snapshot for the user's current local day: annotated task
// states partitioned into recommendations, the health and score rollups, and
// one motivational message.
func (s *TodayServiceImpl) View(ctx context.Context, userID int64) (view *contract.TodayView, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "today_view", start, err, map[string]any{"user_id": userID})
	}()

	today := domain.DateOf(start, s.loc)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}

	states, err := loadStates(ctx, s.tasks, s.completions, userID, today)
	if err != nil {
		return nil, err
	}

	recommended, others := engine.Recommend(states, user.DailyEnergyBudget, user.MaxDailyTasks, today)

	completed := completedOf(states)
	energySpent := 0
	for _, c := range completed {
		energySpent += c.EnergyCost
	}

	overall := engine.AggregateHealth(states)

	var dailyScore *contract.DailyScore
	if len(completed) > 0 {
		score := engine.ScoreDay(completed, user.DailyEnergyBudget)
		dailyScore = &contract.DailyScore{
			BaseScore:      score.BaseScore,
			UrgentBonus:    score.UrgentBonus,
			TotalScore:     score.TotalScore,
			Grade:          score.Grade,
			Message:        score.Message,
			EnergySpent:    score.EnergySpent,
			TasksCompleted: score.TasksCompleted,
		}
	}

	// First maximum wins on urgency ties.
	var mostUrgent *domain.TaskState
	for i := range states {
		if states[i].IsCompletedToday {
			continue
		}
		if mostUrgent == nil || states[i].Urgency > mostUrgent.Urgency {
			mostUrgent = &states[i]
		}
	}
	message := engine.MotivationalMessage(overall.Score, len(states), mostUrgent, today)

	return &contract.TodayView{
		Date:             today.Format(dateLayout),
		EnergyBudget:     user.DailyEnergyBudget,
		EnergySpent:      energySpent,
		EnergyRemaining:  user.DailyEnergyBudget - energySpent,
		RecommendedTasks: toTaskViews(recommended, today),
		OtherTasks:       toTaskViews(others, today),
		OverallHealth: contract.OverallHealth{
			Score:   overall.Score,
			Status:  overall.Status,
			Icon:    overall.Icon,
			Message: overall.Message,
		},
		DailyScore:          dailyScore,
		MotivationalMessage: message,
	}, nil
}

// Complete records that the task was done now. The unique (task, local date)
// index inside the transaction is the gate: a concurrent duplicate loses with
// repository.ErrDuplicateCompletion and leaves no side effect.
func (s *TodayServiceImpl) Complete(ctx context.Context, userID, taskID int64, req contract.CompleteTaskRequest) (receipt *contract.CompletionReceipt, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "mark_done", start, err, map[string]any{"user_id": userID, "task_id": taskID})
	}()

	now := start
	today := domain.DateOf(now, s.loc)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		users := repository.NewSQLiteUserRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		completions := repository.NewSQLiteCompletionRepo(tx)
		logs := repository.NewSQLiteDailyLogRepo(tx)

		task, err := tasks.GetOwned(ctx, taskID, userID)
		if err != nil {
			return err
		}

		completion := &domain.Completion{
			TaskID:      task.ID,
			CompletedAt: now.UTC(),
			CompletedOn: today,
			Note:        req.Note,
			Mood:        req.Mood,
		}
		if err := completion.Validate(); err != nil {
			return err
		}
		if err := completions.Create(ctx, completion); err != nil {
			return err
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := refreshDailyLog(ctx, tasks, completions, logs, user, today); err != nil {
			return err
		}

		receipt = &contract.CompletionReceipt{
			Success:      true,
			Message:      fmt.Sprintf("已完成: %s ✓", task.Name),
			CompletionID: completion.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Uncomplete removes today's completion of the task. A second undo on the
// same day finds nothing and reports repository.ErrNotFound.
func (s *TodayServiceImpl) Uncomplete(ctx context.Context, userID, taskID int64) (err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "undo_done", start, err, map[string]any{"user_id": userID, "task_id": taskID})
	}()

	today := domain.DateOf(start, s.loc)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		users := repository.NewSQLiteUserRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		completions := repository.NewSQLiteCompletionRepo(tx)
		logs := repository.NewSQLiteDailyLogRepo(tx)

		task, err := tasks.GetOwned(ctx, taskID, userID)
		if err != nil {
			return err
		}

		existed, err := completions.DeleteOn(ctx, task.ID, today)
		if err != nil {
			return fmt.Errorf("deleting completion: %w", err)
		}
		if !existed {
			return fmt.Errorf("completion of task %d today: %w", taskID, repository.ErrNotFound)
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		return refreshDailyLog(ctx, tasks, completions, logs, user, today)
	})
}
