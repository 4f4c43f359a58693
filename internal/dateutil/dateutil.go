// Package dateutil provides pure calendar-window arithmetic used by all
// entry filtering. Dates are ISO 8601 day strings (YYYY-MM-DD) with no
// time component; every function takes an explicit reference time so
// callers and tests control the clock.
package dateutil

import "time"

// ISODate is the layout for calendar date strings
const ISODate = "2006-01-02"

// Today returns the calendar date of now as an ISO string in local time
func Today(now time.Time) string {
	return now.Format(ISODate)
}

// ToISO normalizes an optional date-like input to an ISO date string.
// An empty input defaults to today; anything else passes through
// unchanged (no parsing of arbitrary date formats is attempted).
func ToISO(input string, now time.Time) string {
	if input == "" {
		return Today(now)
	}
	return input
}

// ParseISO parses an ISO date string in the local timezone.
func ParseISO(iso string) (time.Time, error) {
	return time.ParseInLocation(ISODate, iso, time.Local)
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// InLastNDays reports whether iso falls within the rolling n-calendar-day
// window ending today: [start of (now - (n-1) days), end of now], inclusive.
// For n=7 this yields a trailing 7-day window including today.
// Unparseable dates never match.
func InLastNDays(iso string, n int, now time.Time) bool {
	d, err := ParseISO(iso)
	if err != nil {
		return false
	}
	from := StartOfDay(now).AddDate(0, 0, -(n - 1))
	to := EndOfDay(now)
	return !d.Before(from) && !d.After(to)
}

// SameMonth reports whether iso falls in the same calendar month and
// year as the reference time. Unparseable dates never match.
func SameMonth(iso string, ref time.Time) bool {
	d, err := ParseISO(iso)
	if err != nil {
		return false
	}
	return d.Month() == ref.Month() && d.Year() == ref.Year()
}
