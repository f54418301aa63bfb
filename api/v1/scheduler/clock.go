package scheduler

import "time"

// Clock abstracts wall-clock time so the sweep schedule can be driven
// by tests without waiting for a real day to pass.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
