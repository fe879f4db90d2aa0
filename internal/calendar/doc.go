// Package calendar provides a read-only client for the Google Calendar API.
//
// The client authenticates with a service account credential (a
// non-interactive identity, no end-user login) scoped to read-only calendar
// access, and exposes a single query: the upcoming events of one calendar,
// ordered by start time.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx, credentialJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.UpcomingEvents(ctx, "primary", time.Now())
package calendar
