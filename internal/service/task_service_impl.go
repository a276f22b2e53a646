package service

import (
	"context"
	"sort"
	"time"

	"lentoflow/internal/contract"
	"lentoflow/internal/domain"
	"lentoflow/internal/engine"
	"lentoflow/internal/repository"
)

// TaskServiceImpl owns task CRUD with ownership checks plus the per-task
// statistics rollup.
type TaskServiceImpl struct {
	tasks       repository.TaskRepo
	completions repository.CompletionRepo
	clock       Clock
	loc         *time.Location
	observer    UseCaseObserver
}

func NewTaskService(
	tasks repository.TaskRepo,
	completions repository.CompletionRepo,
	clock Clock,
	loc *time.Location,
	observer UseCaseObserver,
) *TaskServiceImpl {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &TaskServiceImpl{
		tasks:       tasks,
		completions: completions,
		clock:       clock,
		loc:         loc,
		observer:    observer,
	}
}

func toTaskResponse(t *domain.Task) *contract.TaskResponse {
	return &contract.TaskResponse{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		EnergyCost:       t.EnergyCost,
		ExpectedInterval: t.ExpectedInterval,
		Importance:       t.Importance,
		Category:         t.Category,
		Color:            t.Color,
		Icon:             t.Icon,
		IsActive:         t.IsActive,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339),
	}
}

// Create persists a new active task. Zero-value numeric fields and empty
// color/icon take the documented defaults before validation.
func (s *TaskServiceImpl) Create(ctx context.Context, userID int64, req contract.TaskCreate) (resp *contract.TaskResponse, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "task_create", start, err, map[string]any{"user_id": userID})
	}()

	task := &domain.Task{
		UserID:           userID,
		Name:             req.Name,
		Description:      req.Description,
		EnergyCost:       req.EnergyCost,
		ExpectedInterval: req.ExpectedInterval,
		Importance:       req.Importance,
		Category:         req.Category,
		Color:            req.Color,
		Icon:             req.Icon,
		IsActive:         true,
	}
	if task.EnergyCost == 0 {
		task.EnergyCost = domain.DefaultEnergyCost
	}
	if task.ExpectedInterval == 0 {
		task.ExpectedInterval = domain.DefaultExpectedInterval
	}
	if task.Importance == 0 {
		task.Importance = domain.DefaultImportance
	}
	if task.Color == "" {
		task.Color = domain.DefaultTaskColor
	}
	if task.Icon == "" {
		task.Icon = domain.DefaultTaskIcon
	}
	if err = task.Validate(); err != nil {
		return nil, err
	}

	now := start.UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	if err = s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, userID, taskID int64) (resp *contract.TaskResponse, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "task_get", start, err, map[string]any{"user_id": userID, "task_id": taskID})
	}()

	task, err := s.tasks.GetOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func (s *TaskServiceImpl) List(ctx context.Context, userID int64, filter repository.TaskFilter) (resp []contract.TaskResponse, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "task_list", start, err, map[string]any{"user_id": userID})
	}()

	tasks, err := s.tasks.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	resp = make([]contract.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, *toTaskResponse(t))
	}
	return resp, nil
}

// Update applies the non-nil fields of req and revalidates the whole task.
func (s *TaskServiceImpl) Update(ctx context.Context, userID, taskID int64, req contract.TaskUpdate) (resp *contract.TaskResponse, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "task_update", start, err, map[string]any{"user_id": userID, "task_id": taskID})
	}()

	task, err := s.tasks.GetOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.EnergyCost != nil {
		task.EnergyCost = *req.EnergyCost
	}
	if req.ExpectedInterval != nil {
		task.ExpectedInterval = *req.ExpectedInterval
	}
	if req.Importance != nil {
		task.Importance = *req.Importance
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	if req.Icon != nil {
		task.Icon = *req.Icon
	}
	if req.IsActive != nil {
		task.IsActive = *req.IsActive
	}
	if err = task.Validate(); err != nil {
		return nil, err
	}

	task.UpdatedAt = start.UTC()
	if err = s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete removes the task; the store cascades its completions.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, taskID int64) (err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "task_delete", start, err, map[string]any{"user_id": userID, "task_id": taskID})
	}()

	task, err := s.tasks.GetOwned(ctx, taskID, userID)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, task.ID)
}

// Stats aggregates the full completion history of one task: streaks,
// completion rate against the expected cadence, and the current health.
func (s *TaskServiceImpl) Stats(ctx context.Context, userID, taskID int64) (stats *contract.TaskStats, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "task_stats", start, err, map[string]any{"user_id": userID, "task_id": taskID})
	}()

	task, err := s.tasks.GetOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	completions, err := s.completions.ListByTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(start, s.loc)

	dates := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		dates = append(dates, c.CompletedOn)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, current := streaks(dates, today)

	// Expected cadence: one completion per interval since creation.
	var rate float64
	created := domain.DateOf(task.CreatedAt, s.loc)
	if expected := float64(domain.DaysBetween(created, today)) / float64(task.ExpectedInterval); expected > 0 {
		rate = round2(float64(len(completions)) / expected)
	}

	var avgHealth float64
	var lastCompleted *string
	if len(dates) > 0 {
		last := dates[len(dates)-1]
		avgHealth = round1(float64(engine.Health(&last, task.ExpectedInterval, today)))
		formatted := last.Format(dateLayout)
		lastCompleted = &formatted
	}

	return &contract.TaskStats{
		TaskID:           task.ID,
		TaskName:         task.Name,
		TotalCompletions: len(completions),
		LongestStreak:    longest,
		CurrentStreak:    current,
		CompletionRate:   rate,
		AverageHealth:    avgHealth,
		LastCompleted:    lastCompleted,
	}, nil
}

// streaks computes the longest run of consecutive completion dates and the
// run ending today. The current streak is zero unless the latest completion
// is today.
func streaks(dates []time.Time, today time.Time) (longest, current int) {
	if len(dates) == 0 {
		return 0, 0
	}

	streak := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if domain.DaysBetween(dates[i-1], dates[i]) == 1 {
			streak++
		} else {
			streak = 1
		}
		longest = max(longest, streak)
	}

	if dates[len(dates)-1].Equal(today) {
		current = 1
		for i := len(dates) - 2; i >= 0; i-- {
			if domain.DaysBetween(dates[i], dates[i+1]) != 1 {
				break
			}
			current++
		}
	}
	return longest, current
}
