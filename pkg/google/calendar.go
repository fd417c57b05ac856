package google

import (
	"context"
	"fmt"
	"time"

	"github.com/agendly/agendly/pkg/provider"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
)

var ErrUnauthenticated = fmt.Errorf("user is unauthenticated, authentication is required")

// Calendar reads one Google calendar and maps its items into the
// provider-neutral ExternalEvent shape. It is read-only: the engine never
// mutates externally synced events.
type Calendar struct {
	service    *gcal.Service
	calendarId string
}

func newGoogleCalendar(service *gcal.Service, calendarId string) *Calendar {
	return &Calendar{
		service:    service,
		calendarId: calendarId,
	}
}

func (c *Calendar) GetEvents(_ context.Context, from time.Time, to time.Time) ([]provider.ExternalEvent, error) {
	googleEvents, err := c.service.Events.List(c.calendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()

	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	return c.googleEventsToEvents(googleEvents.Items), nil
}

func (c *Calendar) googleEventsToEvents(googleEvents []*gcal.Event) []provider.ExternalEvent {
	events := make([]provider.ExternalEvent, 0, len(googleEvents))
	for _, item := range googleEvents {
		event := provider.ExternalEvent{
			ID:          item.Id,
			Title:       item.Summary,
			Description: item.Description,
			Color:       item.ColorId,
		}
		if item.Location != "" {
			event.Location = item.Location
		}

		// All-day items carry a date, timed items carry a datetime.
		if item.Start != nil && item.Start.Date != "" {
			event.AllDay = true
			start, err := time.ParseInLocation("2006-01-02", item.Start.Date, time.Local)
			if err != nil {
				log.Warnf("skipping Google event with unparseable all-day start: %s (%s)", item.Summary, item.Start.Date)
				continue
			}
			event.Start = start
			if item.End != nil && item.End.Date != "" {
				end, err := time.ParseInLocation("2006-01-02", item.End.Date, time.Local)
				if err == nil {
					event.End = end
				}
			}
		} else {
			if item.Start != nil {
				event.Start, _ = time.Parse(time.RFC3339, item.Start.DateTime)
			}
			if item.End != nil {
				event.End, _ = time.Parse(time.RFC3339, item.End.DateTime)
			}
		}

		events = append(events, event)
	}
	return events
}
