// Package aggregate derives numeric summaries and filtered, sorted
// views from the full entry collection. No function in this package
// mutates its input.
package aggregate

import (
	"sort"
	"time"

	"github.com/mwrobel/kcal/internal/dateutil"
	"github.com/mwrobel/kcal/internal/entry"
)

// WindowDays is the size of the rolling week window
const WindowDays = 7

// Range selects which date window FilteredSorted applies
type Range int

const (
	RangeAll Range = iota
	RangeToday
	RangeWeek
	RangeMonth
)

// ParseRange maps a range filter name to a Range.
// Unknown names fall back to RangeAll.
func ParseRange(name string) (Range, bool) {
	switch name {
	case "all", "":
		return RangeAll, true
	case "today":
		return RangeToday, true
	case "week":
		return RangeWeek, true
	case "month":
		return RangeMonth, true
	}
	return RangeAll, false
}

// String returns the filter name for the range
func (r Range) String() string {
	switch r {
	case RangeToday:
		return "today"
	case RangeWeek:
		return "week"
	case RangeMonth:
		return "month"
	default:
		return "all"
	}
}

// Totals contains the aggregated sums for the standard windows
type Totals struct {
	Today       int
	Week        int
	WeekAverage float64
}

// SumForDate sums Kcal over entries whose Date equals iso exactly
// (string equality, not date arithmetic). Returns 0 for no matches.
func SumForDate(entries []entry.Entry, iso string) int {
	sum := 0
	for _, e := range entries {
		if e.Date == iso {
			sum += e.Kcal
		}
	}
	return sum
}

// CalcTotals computes today's total, the trailing-7-day total, and the week
// average. The average always divides by the fixed window size, not by
// the number of days with data, so partial weeks dilute the average and
// empty weeks yield 0.
func CalcTotals(entries []entry.Entry, now time.Time) Totals {
	today := dateutil.Today(now)

	todayTotal := 0
	weekTotal := 0
	for _, e := range entries {
		if e.Date == today {
			todayTotal += e.Kcal
		}
		if dateutil.InLastNDays(e.Date, WindowDays, now) {
			weekTotal += e.Kcal
		}
	}

	return Totals{
		Today:       todayTotal,
		Week:        weekTotal,
		WeekAverage: float64(weekTotal) / WindowDays,
	}
}

// FilteredSorted returns a copy of entries sorted by date descending
// with ties broken by id descending (most recent first), then filtered
// by the given range. Filtering never reorders.
func FilteredSorted(entries []entry.Entry, r Range, now time.Time) []entry.Entry {
	sorted := make([]entry.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].ID > sorted[j].ID
	})

	if r == RangeAll {
		return sorted
	}

	today := dateutil.Today(now)
	filtered := make([]entry.Entry, 0, len(sorted))
	for _, e := range sorted {
		keep := false
		switch r {
		case RangeToday:
			keep = e.Date == today
		case RangeWeek:
			keep = dateutil.InLastNDays(e.Date, WindowDays, now)
		case RangeMonth:
			keep = dateutil.SameMonth(e.Date, now)
		}
		if keep {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
