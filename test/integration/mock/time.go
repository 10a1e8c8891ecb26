package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock for scenarios that pin the calendar.
// It satisfies the application's Clock interface.
type Time struct {
	mu      sync.Mutex
	current time.Time
	setAt   time.Time
}

func NewTime() *Time {
	now := time.Now().UTC()
	return &Time{
		current: now,
		setAt:   now,
	}
}

// SetCurrentTime pins the clock to the given instant.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.setAt = time.Now()
}

// Now returns the pinned instant advanced by the real time elapsed since it
// was set.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current.Add(time.Since(t.setAt))
}
