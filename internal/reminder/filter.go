package reminder

import (
	"log/slog"
	"strings"
	"time"

	"snowreminder/internal/calendar"
	"snowreminder/internal/logging"
)

// keywords an event title must contain (case-insensitive) to count as a
// snowboarding event.
var keywords = []string{"snowboarding", "snow", "board", "snow trip"}

const dateOnlyFormat = "2006-01-02"

// matchesKeywords reports whether the title contains any of the snowboarding
// keywords, ignoring case.
func matchesKeywords(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// resolveStart parses an event's start value, preferring the date-only shape
// of all-day events over the date-time shape of timed events. ok is false
// when the event carries no start value at all.
func resolveStart(start calendar.EventStart) (t time.Time, ok bool, err error) {
	switch {
	case start.Date != "":
		t, err = time.Parse(dateOnlyFormat, start.Date)
	case start.DateTime != "":
		// RFC 3339 treats a trailing "Z" and an explicit "+00:00" offset
		// as the same instant.
		t, err = time.Parse(time.RFC3339, start.DateTime)
	default:
		return time.Time{}, false, nil
	}
	return t, err == nil, err
}

// isWeekend reports whether t falls on a Saturday or Sunday.
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// matchWeekendEvents returns the resolved start of every event whose title
// matches the keyword set and whose day-of-week is Saturday or Sunday.
// Events without a start value are skipped silently; unparseable start
// values are skipped with a warning.
func matchWeekendEvents(logger *slog.Logger, events []calendar.Event) []time.Time {
	var matched []time.Time
	for _, event := range events {
		if !matchesKeywords(event.Summary) {
			continue
		}

		start, ok, err := resolveStart(event.Start)
		if err != nil {
			logger.Warn("skipping event with unparseable start value",
				logging.Event(event.Summary), logging.Err(err))
			continue
		}
		if !ok {
			continue
		}

		if !isWeekend(start) {
			continue
		}

		matched = append(matched, start)
		logger.Info("found snowboarding event",
			logging.Event(event.Summary), logging.Date(start))
	}
	return matched
}
