package domain

import (
	"fmt"
	"time"
)

const (
	MinMood = 1
	MaxMood = 5
)

// Completion records that a task was done at a point in time. CompletedOn is
// the user-local calendar date of CompletedAt; the store enforces uniqueness
// of (TaskID, CompletedOn).
type Completion struct {
	ID          int64
	TaskID      int64
	CompletedAt time.Time
	CompletedOn time.Time
	Note        string
	Mood        *int
}

// Validate checks the optional mood range.
func (c *Completion) Validate() error {
	if c.Mood != nil && (*c.Mood < MinMood || *c.Mood > MaxMood) {
		return fmt.Errorf("%w: mood must be between %d and %d", ErrValidation, MinMood, MaxMood)
	}
	return nil
}
