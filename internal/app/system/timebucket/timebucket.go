// Package timebucket provides calendar bucketing helpers for dashboard
// time-series.
//
// All bucketing is done in UTC so that a given instant always maps to the
// same bucket regardless of the host timezone. Every function is pure:
// callers inject the reference instant instead of having this package read
// the system clock, which keeps aggregation deterministic and testable.
package timebucket

import "time"

// dayKeyLayout is the canonical calendar-day key format.
const dayKeyLayout = "2006-01-02"

// DayKey returns the UTC calendar-day key for t, e.g. "2026-08-28".
// Two instants on the same UTC day always produce the same key.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// Last7DayKeys returns exactly 7 day keys, oldest first, ending on the UTC
// calendar day of ref.
func Last7DayKeys(ref time.Time) []string {
	day := ref.UTC().Truncate(24 * time.Hour)
	keys := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		keys = append(keys, day.AddDate(0, 0, -i).Format(dayKeyLayout))
	}
	return keys
}

// DayLabel returns the short weekday label ("Mon", "Tue", ...) for a day
// key produced by DayKey. It returns the key unchanged if it does not
// parse, so display code never sees an empty label.
func DayLabel(key string) string {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.UTC)
	if err != nil {
		return key
	}
	return t.Format("Mon")
}

// MonthBounds returns the first instant of ref's UTC month and the first
// instant of the month before it.
func MonthBounds(ref time.Time) (curStart, prevStart time.Time) {
	u := ref.UTC()
	curStart = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart = curStart.AddDate(0, -1, 0)
	return curStart, prevStart
}
