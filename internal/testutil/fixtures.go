package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"lentoflow/internal/domain"
)

var testUserCounter atomic.Int64

// User options
type UserOption func(*domain.User)

func WithEnergyBudget(b int) UserOption {
	return func(u *domain.User) {
		u.DailyEnergyBudget = b
	}
}

func WithMaxDailyTasks(n int) UserOption {
	return func(u *domain.User) {
		u.MaxDailyTasks = n
	}
}

func NewTestUser(opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	n := testUserCounter.Add(1)
	u := &domain.User{
		Username:          fmt.Sprintf("user%d", n),
		Email:             fmt.Sprintf("user%d@example.com", n),
		DailyEnergyBudget: domain.DefaultDailyEnergyBudget,
		MaxDailyTasks:     domain.DefaultMaxDailyTasks,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Task options
type TaskOption func(*domain.Task)

func WithEnergyCost(c int) TaskOption {
	return func(t *domain.Task) {
		t.EnergyCost = c
	}
}

func WithExpectedInterval(d int) TaskOption {
	return func(t *domain.Task) {
		t.ExpectedInterval = d
	}
}

func WithImportance(i int) TaskOption {
	return func(t *domain.Task) {
		t.Importance = i
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithInactive() TaskOption {
	return func(t *domain.Task) {
		t.IsActive = false
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTask(userID int64, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		UserID:           userID,
		Name:             name,
		EnergyCost:       domain.DefaultEnergyCost,
		ExpectedInterval: domain.DefaultExpectedInterval,
		Importance:       domain.DefaultImportance,
		Color:            domain.DefaultTaskColor,
		Icon:             domain.DefaultTaskIcon,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Completion options
type CompletionOption func(*domain.Completion)

func WithNote(note string) CompletionOption {
	return func(c *domain.Completion) {
		c.Note = note
	}
}

func WithMood(mood int) CompletionOption {
	return func(c *domain.Completion) {
		c.Mood = &mood
	}
}

// NewTestCompletion builds a completion on the given local date, stamped at
// noon UTC of that date.
func NewTestCompletion(taskID int64, day time.Time, opts ...CompletionOption) *domain.Completion {
	c := &domain.Completion{
		TaskID:      taskID,
		CompletedAt: day.Add(12 * time.Hour),
		CompletedOn: day,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
