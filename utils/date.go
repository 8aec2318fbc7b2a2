package utils

import "time"

// SameDay reports whether two timestamps fall on the same calendar date in
// their respective locations.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Midnight returns the midnight starting the day t falls in.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsMidnight reports whether t is exactly at the start of its day.
func IsMidnight(t time.Time) bool {
	return t.Equal(Midnight(t))
}

// ReportDay returns the midnight ending the collection window of a report
// stamped t. Finished days are already stamped with that midnight; mid-day
// stamps (the most recent day's rows carry the crawl time) round up to it.
// The result is stable across crawls: a row re-stamped later the same day,
// or relabeled to the next midnight once the day is over, keeps the same
// report day.
func ReportDay(t time.Time) time.Time {
	if IsMidnight(t) {
		return t
	}
	return Midnight(t).Add(24 * time.Hour)
}
