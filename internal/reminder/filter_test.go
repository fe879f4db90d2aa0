package reminder

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowreminder/internal/calendar"
)

func TestMatchesKeywords(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Snow trip to Tahoe", true},
		{"SNOWBOARDING DAY", true},
		{"Board games night", true}, // "board" matches, case-insensitive substring
		{"Team meeting", false},
		{"", false},
		{"Skiing weekend", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesKeywords(tt.title))
		})
	}
}

func TestResolveStart_DatePreferred(t *testing.T) {
	// When both shapes are present the date-only value wins.
	start, ok, err := resolveStart(calendar.EventStart{
		Date:     "2026-02-07",
		DateTime: "2026-02-08T10:00:00Z",
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), start)
}

func TestResolveStart_ZuluEqualsExplicitOffset(t *testing.T) {
	zulu, ok, err := resolveStart(calendar.EventStart{DateTime: "2026-02-07T08:00:00Z"})
	require.NoError(t, err)
	require.True(t, ok)

	offset, ok2, err := resolveStart(calendar.EventStart{DateTime: "2026-02-07T08:00:00+00:00"})
	require.NoError(t, err)
	require.True(t, ok2)

	assert.True(t, zulu.Equal(offset), "Z and +00:00 must parse to the same instant")
}

func TestResolveStart_NoValue(t *testing.T) {
	_, ok, err := resolveStart(calendar.EventStart{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveStart_Malformed(t *testing.T) {
	_, ok, err := resolveStart(calendar.EventStart{Date: "02/07/2026"})
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestMatchWeekendEvents(t *testing.T) {
	logger := slog.Default()

	// 2026-02-07 is a Saturday, 2026-02-08 a Sunday, 2026-02-04 a Wednesday.
	events := []calendar.Event{
		{Summary: "Snow trip to Tahoe", Start: calendar.EventStart{Date: "2026-02-07"}},
		{Summary: "Team meeting", Start: calendar.EventStart{Date: "2026-02-08"}},
		{Summary: "Snowboarding day", Start: calendar.EventStart{Date: "2026-02-04"}},
		{Summary: "Board games", Start: calendar.EventStart{DateTime: "2026-02-08T09:00:00Z"}},
		{Summary: "Snow trip"}, // no start value: skipped silently
	}

	matched := matchWeekendEvents(logger, events)
	require.Len(t, matched, 2)
	assert.Equal(t, time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), matched[0])
	assert.Equal(t, time.February, matched[1].Month())
	assert.Equal(t, 8, matched[1].Day())
}

func TestMatchWeekendEvents_TimedEventInOffsetZone(t *testing.T) {
	logger := slog.Default()

	// Saturday morning in Japan; still Friday in UTC. The event keeps the
	// calendar date its own zone shows, so it counts as a weekend event.
	events := []calendar.Event{
		{Summary: "snowboarding at Niseko", Start: calendar.EventStart{DateTime: "2026-02-07T08:00:00+09:00"}},
	}

	matched := matchWeekendEvents(logger, events)
	require.Len(t, matched, 1)
	assert.Equal(t, time.Saturday, matched[0].Weekday())
}
