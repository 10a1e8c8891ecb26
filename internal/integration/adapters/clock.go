// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock in UTC.
type systemClock struct{}

// NewSystemClock creates a new system clock instance.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
