// Package valueobject defines immutable value types shared by the domain layer.
package valueobject

import (
	"fmt"
	"time"

	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

// DateLayout is the canonical serialization form for record dates (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// dateLayouts is the ordered list of accepted date formats. The four-digit
// year form is tried first; the two-digit fallback follows Go's "06" verb,
// mapping 00-68 to 20xx and 69-99 to 19xx.
var dateLayouts = []string{
	DateLayout,
	"02-01-06",
}

// CalendarDate is a normalized calendar date, independent of the string
// encoding it was parsed from.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate parses a raw date string against the accepted formats in
// order and returns the first successful match. It returns
// ErrUnrecognizedDateFormat when no format matches.
func ParseCalendarDate(raw string) (CalendarDate, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return CalendarDate{
			Year:  t.Year(),
			Month: t.Month(),
			Day:   t.Day(),
		}, nil
	}
	return CalendarDate{}, fmt.Errorf("%w: %q", domainerror.ErrUnrecognizedDateFormat, raw)
}

// CalendarDateOf builds a CalendarDate from a time.Time.
func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate{
		Year:  t.Year(),
		Month: t.Month(),
		Day:   t.Day(),
	}
}

// String serializes the date in the canonical DD-MM-YYYY form. Parsing the
// result yields the same CalendarDate.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// InMonth reports whether the date falls in the given year and month.
func (d CalendarDate) InMonth(year int, month time.Month) bool {
	return d.Year == year && d.Month == month
}

// InYear reports whether the date falls in the given year.
func (d CalendarDate) InYear(year int) bool {
	return d.Year == year
}

// IsZero reports whether the date is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}
