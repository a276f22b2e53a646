package engine

import (
	"math"
	"time"

	"lentoflow/internal/domain"
)

// CriticalUrgency is the threshold above which a task escapes the energy
// budget during recommendation.
const CriticalUrgency = 2.0

// Urgency level band lower bounds (half-open intervals).
const (
	normalMin = 0.7
	highMin   = 1.3
)

// Urgency computes the urgency scalar for a task from its completion history.
// A task never done counts as twice its expected interval overdue. The result
// mixes overdue pressure (logarithmic) with an importance weight mapping
// [1,5] onto [0.6,1.4], rounded half away from zero to 2 decimals.
func Urgency(lastDone *time.Time, expectedInterval, importance int, today time.Time) float64 {
	if expectedInterval <= 0 {
		expectedInterval = 1
	}

	daysSince := expectedInterval * 2
	if lastDone != nil {
		daysSince = domain.DaysBetween(*lastDone, today)
	}

	base := float64(daysSince) / float64(expectedInterval)

	overdue := daysSince - expectedInterval
	if overdue < 0 {
		overdue = 0
	}
	overdueFactor := 1 + math.Log(1+float64(overdue)*0.3)

	importanceWeight := 0.6 + float64(importance-1)*0.2

	return round2(base * overdueFactor * importanceWeight)
}

// LevelOf classifies an urgency scalar into its qualitative band.
// Values below the normal threshold, including negatives, are low.
func LevelOf(urgency float64) domain.UrgencyLevel {
	switch {
	case urgency >= CriticalUrgency:
		return domain.UrgencyCritical
	case urgency >= highMin:
		return domain.UrgencyHigh
	case urgency >= normalMin:
		return domain.UrgencyNormal
	default:
		return domain.UrgencyLow
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
