package agenda

import (
	"fmt"
	"time"

	"github.com/agendly/agendly/internal/utils"
)

// Date is a calendar date without a time-of-day component. Comparing Dates by
// value compares year, month and day only, which keeps day matching immune to
// the UTC drift that epoch or string comparison of date-only values causes.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return FromTime(t), nil
}

// FromTime extracts the calendar date of t in its own location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date according to the given clock.
func Today(clock utils.Clock) Date {
	return FromTime(clock.Now())
}

// SameCalendarDay reports whether a and b fall on the same wall-clock date,
// ignoring their time-of-day components.
func SameCalendarDay(a, b time.Time) bool {
	return FromTime(a) == FromTime(b)
}

// IsToday reports whether t falls on the current calendar date according to
// the given clock.
func IsToday(clock utils.Clock, t time.Time) bool {
	return SameCalendarDay(clock.Now(), t)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// Before reports whether d occurs before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Time returns midnight of d in the local timezone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// String returns the "YYYY-MM-DD" form of d.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
