package engine

import (
	"math"
	"time"

	"lentoflow/internal/domain"
)

// Health for a task that has never been completed.
const neverDoneHealth = 30

// Health computes the per-task health score in [10,100]: 100 on the day of
// completion, linear decay to 50 at the expected interval, then a steeper
// capped decay with a floor of 10. A task with no history scores 30.
func Health(lastDone *time.Time, expectedInterval int, today time.Time) int {
	if expectedInterval <= 0 {
		expectedInterval = 1
	}
	if lastDone == nil {
		return neverDoneHealth
	}

	daysSince := domain.DaysBetween(*lastDone, today)
	switch {
	case daysSince <= 0:
		return 100
	case daysSince <= expectedInterval:
		decayPerDay := 50 / float64(expectedInterval)
		return int(100 - float64(daysSince)*decayPerDay)
	default:
		extra := daysSince - expectedInterval
		extraDecay := math.Min(40, float64(extra)*(30/float64(expectedInterval)))
		h := int(50 - extraDecay)
		if h < 10 {
			h = 10
		}
		return h
	}
}
