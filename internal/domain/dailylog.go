package domain

import "time"

// DailyLog is the cached per-(user, date) rollup. It is derivable from
// completions and rewritten after every successful mark/undo; history
// endpoints read it, nothing treats it as the source of truth.
type DailyLog struct {
	ID             int64
	UserID         int64
	LogDate        time.Time
	EnergySpent    int
	TasksCompleted int
	DailyScore     *float64
	OverallHealth  *float64
}
