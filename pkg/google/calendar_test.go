package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
)

func TestGoogleEventsToEvents(t *testing.T) {
	calendar := newGoogleCalendar(nil, "primary")

	items := []*gcal.Event{
		{
			Id:      "timed",
			Summary: "Design sync",
			Start:   &gcal.EventDateTime{DateTime: "2026-03-15T13:00:00+01:00"},
			End:     &gcal.EventDateTime{DateTime: "2026-03-15T14:00:00+01:00"},
		},
		{
			Id:       "allday",
			Summary:  "Conference",
			Location: "Berlin",
			Start:    &gcal.EventDateTime{Date: "2026-03-16"},
			End:      &gcal.EventDateTime{Date: "2026-03-17"},
		},
		{
			Id:      "broken",
			Summary: "Unparseable",
			Start:   &gcal.EventDateTime{Date: "16.03.2026"},
		},
	}

	events := calendar.googleEventsToEvents(items)

	require.Len(t, events, 2)

	timed := events[0]
	assert.Equal(t, "timed", timed.ID)
	assert.False(t, timed.AllDay)
	assert.Equal(t, 13, timed.Start.Hour())
	assert.Equal(t, time.Hour, timed.End.Sub(timed.Start))

	allDay := events[1]
	assert.Equal(t, "allday", allDay.ID)
	assert.True(t, allDay.AllDay)
	assert.Equal(t, "Berlin", allDay.Location)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local), allDay.Start)
}
