package domain

import (
	"fmt"
	"time"
)

// Policy defaults applied at registration.
const (
	DefaultDailyEnergyBudget = 15
	DefaultMaxDailyTasks     = 5
)

// Policy bounds enforced on create and update.
const (
	MinDailyEnergyBudget = 5
	MaxDailyEnergyBudget = 30
	MinMaxDailyTasks     = 1
	MaxMaxDailyTasks     = 10
)

type User struct {
	ID                int64
	Username          string
	Email             string
	DailyEnergyBudget int
	MaxDailyTasks     int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks identity fields and policy bounds.
func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: username must not be empty", ErrValidation)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: email must not be empty", ErrValidation)
	}
	if u.DailyEnergyBudget < MinDailyEnergyBudget || u.DailyEnergyBudget > MaxDailyEnergyBudget {
		return fmt.Errorf("%w: daily_energy_budget must be between %d and %d",
			ErrValidation, MinDailyEnergyBudget, MaxDailyEnergyBudget)
	}
	if u.MaxDailyTasks < MinMaxDailyTasks || u.MaxDailyTasks > MaxMaxDailyTasks {
		return fmt.Errorf("%w: max_daily_tasks must be between %d and %d",
			ErrValidation, MinMaxDailyTasks, MaxMaxDailyTasks)
	}
	return nil
}
