package calendar

import (
	gcalendar "google.golang.org/api/calendar/v3"
)

// Event is the slice of a Google Calendar event the reminder cares about:
// the title and the start value in whichever of its two shapes the API
// returned it.
type Event struct {
	// Summary is the event title; empty when the event has none.
	Summary string
	Start   EventStart
}

// EventStart mirrors the API's two start shapes. Exactly one of the fields
// is set for a well-formed event; both empty means the event carries no
// usable start value.
type EventStart struct {
	// Date is set for all-day events, formatted "2006-01-02".
	Date string
	// DateTime is set for timed events, formatted RFC 3339 with either a
	// "Z" suffix or an explicit offset.
	DateTime string
}

// toEvent converts a Google Calendar event to an Event.
func toEvent(item *gcalendar.Event) Event {
	if item == nil {
		return Event{}
	}

	e := Event{Summary: item.Summary}
	if item.Start != nil {
		e.Start = EventStart{
			Date:     item.Start.Date,
			DateTime: item.Start.DateTime,
		}
	}

	return e
}
