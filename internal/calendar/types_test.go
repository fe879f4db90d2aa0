package calendar

import (
	"testing"

	gcalendar "google.golang.org/api/calendar/v3"
)

func TestToEvent(t *testing.T) {
	// A nil event converts to the zero value
	e := toEvent(nil)
	if e.Summary != "" {
		t.Errorf("expected empty summary for nil event, got %q", e.Summary)
	}

	tests := []struct {
		name         string
		item         *gcalendar.Event
		wantSummary  string
		wantDate     string
		wantDateTime string
	}{
		{
			name: "all-day event",
			item: &gcalendar.Event{
				Summary: "Snow trip to Tahoe",
				Start:   &gcalendar.EventDateTime{Date: "2026-02-07"},
			},
			wantSummary: "Snow trip to Tahoe",
			wantDate:    "2026-02-07",
		},
		{
			name: "timed event",
			item: &gcalendar.Event{
				Summary: "Snowboarding day",
				Start:   &gcalendar.EventDateTime{DateTime: "2026-02-07T08:00:00Z"},
			},
			wantSummary:  "Snowboarding day",
			wantDateTime: "2026-02-07T08:00:00Z",
		},
		{
			name:        "no start value",
			item:        &gcalendar.Event{Summary: "Dangling event"},
			wantSummary: "Dangling event",
		},
		{
			name:        "no title",
			item:        &gcalendar.Event{Start: &gcalendar.EventDateTime{Date: "2026-02-08"}},
			wantSummary: "",
			wantDate:    "2026-02-08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toEvent(tt.item)
			if got.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.wantSummary)
			}
			if got.Start.Date != tt.wantDate {
				t.Errorf("Start.Date = %q, want %q", got.Start.Date, tt.wantDate)
			}
			if got.Start.DateTime != tt.wantDateTime {
				t.Errorf("Start.DateTime = %q, want %q", got.Start.DateTime, tt.wantDateTime)
			}
		})
	}
}

func TestNewClient_InvalidCredentials(t *testing.T) {
	_, err := NewClient(t.Context(), []byte("not json"))
	if err == nil {
		t.Fatal("expected error for malformed credential payload")
	}
}
