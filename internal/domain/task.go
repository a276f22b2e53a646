package domain

import (
	"fmt"
	"regexp"
	"time"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const (
	DefaultTaskColor        = "#6366f1"
	DefaultTaskIcon         = "star"
	DefaultEnergyCost       = 2
	DefaultExpectedInterval = 2
	DefaultImportance       = 3

	MaxTaskNameLen      = 100
	MinEnergyCost       = 1
	MaxEnergyCost       = 5
	MinExpectedInterval = 1
	MaxExpectedInterval = 30
	MinImportance       = 1
	MaxImportance       = 5
)

// Task is a recurring activity owned by a user. Urgency, health and the
// completed-today flag are derived at read time and never stored here.
type Task struct {
	ID               int64
	UserID           int64
	Name             string
	Description      string
	EnergyCost       int
	ExpectedInterval int
	Importance       int
	Category         string
	Color            string
	Icon             string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks boundary constraints on all stored fields.
func (t *Task) Validate() error {
	if t.Name == "" || len(t.Name) > MaxTaskNameLen {
		return fmt.Errorf("%w: name length must be between 1 and %d", ErrValidation, MaxTaskNameLen)
	}
	if t.EnergyCost < MinEnergyCost || t.EnergyCost > MaxEnergyCost {
		return fmt.Errorf("%w: energy_cost must be between %d and %d", ErrValidation, MinEnergyCost, MaxEnergyCost)
	}
	if t.ExpectedInterval < MinExpectedInterval || t.ExpectedInterval > MaxExpectedInterval {
		return fmt.Errorf("%w: expected_interval must be between %d and %d",
			ErrValidation, MinExpectedInterval, MaxExpectedInterval)
	}
	if t.Importance < MinImportance || t.Importance > MaxImportance {
		return fmt.Errorf("%w: importance must be between %d and %d", ErrValidation, MinImportance, MaxImportance)
	}
	if t.Color != "" && !colorPattern.MatchString(t.Color) {
		return fmt.Errorf("%w: color must match #RRGGBB", ErrValidation)
	}
	return nil
}

// TaskState is the transient value object the engine works on: one task row
// enriched with its completion summary and the derived scalars.
type TaskState struct {
	ID               int64
	Name             string
	EnergyCost       int
	ExpectedInterval int
	Importance       int
	LastDone         *time.Time // local calendar date, nil if never completed
	Urgency          float64
	Health           int
	IsCompletedToday bool
	Color            string
	Icon             string
}
