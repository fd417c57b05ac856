package provider

import (
	"context"
	"time"
)

// StubCalendar is an in-memory ExternalCalendar for tests.
type StubCalendar struct {
	events []ExternalEvent
}

func NewStubCalendar() *StubCalendar {
	return &StubCalendar{}
}

func (s *StubCalendar) AddEvent(event ExternalEvent) {
	s.events = append(s.events, event)
}

func (s *StubCalendar) GetEvents(ctx context.Context, from time.Time, to time.Time) ([]ExternalEvent, error) {
	events := make([]ExternalEvent, 0, len(s.events))
	for _, e := range s.events {
		if e.Start.Before(to) && e.End.After(from) {
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *StubCalendar) Cleanup() {
	s.events = nil
}
