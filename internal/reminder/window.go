package reminder

import "time"

// windowDays is the forward-looking reminder window: today through six days
// ahead, one week in total.
const windowDays = 6

// civilDate truncates t to its calendar date in its own location. A timed
// event keeps the date its calendar shows, not the UTC date of its instant.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the integer day difference between an event's calendar
// date and today's.
func DaysUntil(date, today time.Time) int {
	return int(civilDate(date).Sub(civilDate(today)).Hours() / 24)
}

// InWindow reports whether date falls within the next week of today:
// the day difference is between 0 and 6 inclusive. Past dates and dates a
// full week or more ahead are outside the window.
func InWindow(date, today time.Time) bool {
	days := DaysUntil(date, today)
	return days >= 0 && days <= windowDays
}
