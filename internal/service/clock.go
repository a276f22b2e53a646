package service

import "time"

// Clock supplies the current instant. Injected so the local-day boundary is
// controllable in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return systemClock{} }
