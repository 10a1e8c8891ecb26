package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    CalendarDate
		wantErr bool
	}{
		{
			name: "four digit year",
			raw:  "05-03-2024",
			want: CalendarDate{Year: 2024, Month: time.March, Day: 5},
		},
		{
			name: "two digit year resolves to the same date",
			raw:  "05-03-24",
			want: CalendarDate{Year: 2024, Month: time.March, Day: 5},
		},
		{
			name: "two digit year above 68 resolves to the 1900s",
			raw:  "05-03-99",
			want: CalendarDate{Year: 1999, Month: time.March, Day: 5},
		},
		{
			name: "end of year",
			raw:  "31-12-2023",
			want: CalendarDate{Year: 2023, Month: time.December, Day: 31},
		},
		{
			name:    "slash separated ISO order rejected",
			raw:     "2024/03/05",
			wantErr: true,
		},
		{
			name:    "empty string rejected",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "month out of range rejected",
			raw:     "05-13-2024",
			wantErr: true,
		},
		{
			name:    "day out of range rejected",
			raw:     "32-01-2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.raw, got)
				}
				if !errors.Is(err, domainerror.ErrUnrecognizedDateFormat) {
					t.Errorf("expected ErrUnrecognizedDateFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCalendarDateRoundTrip(t *testing.T) {
	tests := []string{
		"05-03-2024",
		"05-03-24",
		"01-01-2020",
		"29-02-2024",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			first, err := ParseCalendarDate(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			second, err := ParseCalendarDate(first.String())
			if err != nil {
				t.Fatalf("re-parsing %q failed: %v", first.String(), err)
			}

			if first != second {
				t.Errorf("round-trip mismatch: %+v != %+v", first, second)
			}
		})
	}
}

func TestCalendarDateWindows(t *testing.T) {
	d := CalendarDate{Year: 2024, Month: time.March, Day: 5}

	if !d.InMonth(2024, time.March) {
		t.Error("expected date to be in 2024-03")
	}
	if d.InMonth(2024, time.April) {
		t.Error("expected date not to be in 2024-04")
	}
	if !d.InYear(2024) {
		t.Error("expected date to be in 2024")
	}
	if d.InYear(2023) {
		t.Error("expected date not to be in 2023")
	}
}

func TestCalendarDateOf(t *testing.T) {
	d := CalendarDateOf(time.Date(2024, time.March, 5, 13, 45, 0, 0, time.UTC))
	want := CalendarDate{Year: 2024, Month: time.March, Day: 5}
	if d != want {
		t.Errorf("expected %+v, got %+v", want, d)
	}
	if d.String() != "05-03-2024" {
		t.Errorf("expected canonical form 05-03-2024, got %s", d.String())
	}
}
