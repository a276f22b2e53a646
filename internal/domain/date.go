package domain

import "time"

// DateOf truncates t to its calendar date in loc. The result is midnight UTC
// of that date, so date values compare and subtract cleanly.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b. Both arguments
// are expected to be date values as produced by DateOf.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
