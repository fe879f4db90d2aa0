package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// maxUpcomingResults bounds each calendar query; one page is enough for a
// forward-looking reminder.
const maxUpcomingResults = 50

// Client wraps the Google Calendar service with read-only, service-account
// authentication.
type Client struct {
	svc *gcalendar.Service
}

// NewClient creates a Calendar client from a service account credential
// payload. The session is scoped to read-only calendar access and is created
// once per run, after configuration validation.
func NewClient(ctx context.Context, serviceAccountJSON []byte) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, serviceAccountJSON, gcalendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := gcalendar.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// UpcomingEvents lists up to maxUpcomingResults events in a calendar that
// start at or after now, ordered by start time. Recurring events are expanded
// into single instances by the server.
func (c *Client) UpcomingEvents(ctx context.Context, calendarID string, now time.Time) ([]Event, error) {
	res, err := c.svc.Events.List(calendarID).
		TimeMin(now.UTC().Format(time.RFC3339)).
		MaxResults(maxUpcomingResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events for calendar %s: %w", calendarID, err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, toEvent(item))
	}

	return events, nil
}
