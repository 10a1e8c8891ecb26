// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time. Aggregation defaults, goal evaluation and
// report assembly resolve "the current month" through it so tests can pin
// the calendar.
type Clock interface {
	Now() time.Time
}
