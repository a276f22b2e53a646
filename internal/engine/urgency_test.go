package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lentoflow/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysAgo(today time.Time, n int) *time.Time {
	d := today.AddDate(0, 0, -n)
	return &d
}

func TestUrgency_OverdueImportantTask(t *testing.T) {
	// 跑步: interval 2, importance 5, last done 6 days ago.
	// base=3.0, overdue=4, factor=1+ln(2.2), weight=1.4 -> 7.51
	today := date(2026, time.March, 10)

	u := Urgency(daysAgo(today, 6), 2, 5, today)

	assert.InDelta(t, 7.51, u, 0.001)
	assert.Equal(t, domain.UrgencyCritical, LevelOf(u))
}

func TestUrgency_NeverDoneCountsAsDoubleInterval(t *testing.T) {
	today := date(2026, time.March, 10)

	// days_since = 2*I = 6, base = 2, overdue = 3, weight = 1.0
	got := Urgency(nil, 3, 3, today)
	want := Urgency(daysAgo(today, 6), 3, 3, today)

	assert.Equal(t, want, got)
}

func TestUrgency_DoneTodayWithinInterval(t *testing.T) {
	today := date(2026, time.March, 10)

	u := Urgency(daysAgo(today, 0), 7, 3, today)

	assert.Equal(t, 0.0, u)
	assert.Equal(t, domain.UrgencyLow, LevelOf(u))
}

func TestUrgency_ZeroIntervalGuardedAsOne(t *testing.T) {
	today := date(2026, time.March, 10)

	assert.Equal(t,
		Urgency(daysAgo(today, 2), 1, 3, today),
		Urgency(daysAgo(today, 2), 0, 3, today))
}

func TestUrgency_NonDecreasingOverTime(t *testing.T) {
	start := date(2026, time.January, 1)
	last := start.AddDate(0, 0, -1)

	prev := -1.0
	for d := 0; d < 60; d++ {
		today := start.AddDate(0, 0, d)
		u := Urgency(&last, 4, 3, today)
		assert.GreaterOrEqual(t, u, prev, "urgency must not drop as days pass (day %d)", d)
		prev = u
	}
}

func TestUrgency_HigherImportanceScoresStrictlyHigher(t *testing.T) {
	today := date(2026, time.March, 10)
	last := daysAgo(today, 5)

	for m := 1; m < 5; m++ {
		lo := Urgency(last, 3, m, today)
		hi := Urgency(last, 3, m+1, today)
		assert.Greater(t, hi, lo, "importance %d vs %d", m+1, m)
	}
}

func TestLevelOf_Bands(t *testing.T) {
	cases := []struct {
		urgency float64
		want    domain.UrgencyLevel
	}{
		{-0.5, domain.UrgencyLow},
		{0, domain.UrgencyLow},
		{0.69, domain.UrgencyLow},
		{0.7, domain.UrgencyNormal},
		{1.29, domain.UrgencyNormal},
		{1.3, domain.UrgencyHigh},
		{1.99, domain.UrgencyHigh},
		{2.0, domain.UrgencyCritical},
		{7.51, domain.UrgencyCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelOf(tc.urgency), "urgency %v", tc.urgency)
	}
}
