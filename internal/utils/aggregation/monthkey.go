// Package aggregation holds the pure reducers behind the balance-sheet and
// expense reports: month bucketing, summaries, top-N category roll-ups and
// amount-input normalization. Every function is deterministic, does no I/O,
// and treats empty or malformed input as a zero-valued result.
package aggregation

import (
	"time"
)

const monthKeyLayout = "2006-01"

// MonthKey returns the canonical "YYYY-MM" bucket for a date, using the
// date's local calendar year and month. The store keeps UTC instants; keys
// are derived from the wall clock the user saw, so a transaction at 23:30
// on Jan 31 stays in January regardless of offset.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// MonthBounds returns the first and last instant of the month named by a
// "YYYY-MM" key, in local time. The end bound is 23:59:59.999 of the last
// day so inclusive comparisons match the month key exactly.
func MonthBounds(monthKey string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(monthKeyLayout, monthKey, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}

// MonthDisplayName renders a month key as e.g. "January 2025" for report
// labels. Unparseable keys are returned as-is.
func MonthDisplayName(monthKey string) string {
	t, err := time.ParseInLocation(monthKeyLayout, monthKey, time.Local)
	if err != nil {
		return monthKey
	}
	return t.Format("January 2006")
}
