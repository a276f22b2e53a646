package testutil

import "time"

// FixedClock always reports the same instant, pinning the local-day boundary
// in tests.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }
