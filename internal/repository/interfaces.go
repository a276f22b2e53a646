package repository

import (
	"context"
	"errors"
	"time"

	"lentoflow/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicateCompletion is returned when the unique (task_id, completed_on)
// index rejects an insert.
var ErrDuplicateCompletion = errors.New("task already completed on this day")

// TaskFilter narrows task listings. Nil fields match everything.
type TaskFilter struct {
	Category *string
	IsActive *bool
	Skip     int
	Limit    int
}

// CompletionSummary is the per-task completion digest the today composer
// needs: when the task was last done and whether it was done today.
type CompletionSummary struct {
	TaskID         int64
	LastDone       *time.Time
	CompletedToday bool
}

// CompletionDetail joins a completion with its task's energy cost, used by
// the stats rollups.
type CompletionDetail struct {
	TaskID      int64
	CompletedOn time.Time
	EnergyCost  int
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	// GetOwned resolves a task only when it belongs to userID; a foreign
	// task reads as ErrNotFound, never as a permission hint.
	GetOwned(ctx context.Context, id, userID int64) (*domain.Task, error)
	List(ctx context.Context, userID int64, filter TaskFilter) ([]*domain.Task, error)
	ListActive(ctx context.Context, userID int64) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

type CompletionRepo interface {
	Create(ctx context.Context, c *domain.Completion) error
	// DeleteOn removes the unique completion of a task on the given local
	// date. Reports whether a row existed.
	DeleteOn(ctx context.Context, taskID int64, day time.Time) (bool, error)
	ListByTask(ctx context.Context, taskID int64) ([]*domain.Completion, error)
	// SummarizeByUser digests all completions of a user's tasks against the
	// given local date in a single point-in-time read.
	SummarizeByUser(ctx context.Context, userID int64, today time.Time) (map[int64]CompletionSummary, error)
	// ListRange returns completion details for the user's tasks with
	// completed_on in [from, to], both inclusive local dates.
	ListRange(ctx context.Context, userID int64, from, to time.Time) ([]CompletionDetail, error)
	// LastDoneBefore returns, per task of the user, the latest completion
	// date not after the given local date.
	LastDoneBefore(ctx context.Context, userID int64, day time.Time) (map[int64]time.Time, error)
}

type DailyLogRepo interface {
	Upsert(ctx context.Context, l *domain.DailyLog) error
	ListRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.DailyLog, error)
}

type TokenRepo interface {
	Create(ctx context.Context, token string, userID int64, now time.Time) error
	// Resolve returns the user a token belongs to, or ErrNotFound.
	Resolve(ctx context.Context, token string) (int64, error)
}
