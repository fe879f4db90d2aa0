package reminder

import (
	"context"
	"log/slog"
	"time"

	"snowreminder/internal/calendar"
	"snowreminder/internal/logging"
)

// EventSource fetches the upcoming events of one calendar. Satisfied by
// *calendar.Client.
type EventSource interface {
	UpcomingEvents(ctx context.Context, calendarID string, now time.Time) ([]calendar.Event, error)
}

// Notifier delivers the reminder email. Satisfied by *notify.Mailer.
type Notifier interface {
	Send(ctx context.Context) error
}

// Pipeline holds the explicit dependencies of one reminder run. Nothing is
// package-level state; tests inject fakes for both external services.
type Pipeline struct {
	// Calendars are the calendar identifiers to poll, in order.
	Calendars []string
	Events    EventSource
	Notifier  Notifier
	Logger    *slog.Logger

	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

// Result summarizes one run.
type Result struct {
	// EventsExamined counts every event returned across all calendars.
	EventsExamined int
	// Matched holds the resolved dates of events that passed the keyword
	// and weekend filters.
	Matched []time.Time
	// InWindow counts matched dates inside the 7-day window.
	InWindow int
	// Sent reports whether the reminder email went out.
	Sent bool
}

// Run executes one reminder pass: fetch each calendar's upcoming events,
// filter for weekend snowboarding events, and send the reminder when at
// least one match falls within the next week.
//
// A single calendar's fetch failure is logged and absorbed; the remaining
// calendars are still processed. A send failure is fatal and returned with
// KindSend. The reminder is sent at most once per run regardless of how many
// matches qualify.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	var res Result
	start := now()

	for _, calendarID := range p.Calendars {
		events, err := p.Events.UpcomingEvents(ctx, calendarID, start)
		if err != nil {
			fetchErr := newFetchError(calendarID, err)
			logger.Error("error fetching events",
				logging.Calendar(calendarID), logging.Err(fetchErr.Err))
			continue
		}

		logger.Info("fetched events",
			logging.Calendar(calendarID), logging.Count(len(events)))
		res.EventsExamined += len(events)
		res.Matched = append(res.Matched, matchWeekendEvents(logger, events)...)
	}

	today := start.UTC()
	for _, date := range res.Matched {
		if InWindow(date, today) {
			res.InWindow++
		}
	}

	if res.InWindow > 0 {
		if err := p.Notifier.Send(ctx); err != nil {
			sendErr := NewError(KindSend, err)
			logger.Error("failed to send email reminder", logging.Err(err))
			return res, sendErr
		}
		res.Sent = true
		logger.Info("reminder email sent successfully",
			logging.Count(res.InWindow), logging.Status(logging.StatusSuccess))
	}

	return res, nil
}
