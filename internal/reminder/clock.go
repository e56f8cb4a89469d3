package reminder

import "time"

// Timer is a one-shot countdown
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock supplies the current time and timers
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// SystemClock returns a Clock backed by the time package
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{t: time.NewTimer(d)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) C() <-chan time.Time { return s.t.C }

func (s systemTimer) Stop() bool { return s.t.Stop() }
