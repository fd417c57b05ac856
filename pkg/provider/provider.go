package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/agendly/agendly/pkg/user"
	log "github.com/sirupsen/logrus"
)

// ExternalEvent is a read-only record from a synced external calendar.
type ExternalEvent struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Description string
	Location    string
	Color       string
}

// ExternalCalendar reads events from one external calendar source.
type ExternalCalendar interface {
	GetEvents(ctx context.Context, from time.Time, to time.Time) ([]ExternalEvent, error)
}

// CalendarService resolves a concrete calendar for the current user.
type CalendarService interface {
	GetCalendar(ctx context.Context, calendarId string) (ExternalCalendar, error)
}

// Provider selects the external calendar configured in the current user's
// settings. A user without an external calendar gets an empty source.
type Provider struct {
	userService   user.Provider
	googleService CalendarService
}

func NewProvider(userService user.Provider, googleService CalendarService) *Provider {
	return &Provider{
		userService:   userService,
		googleService: googleService,
	}
}

func (p *Provider) getCalendar(ctx context.Context) (ExternalCalendar, error) {
	currentUser, err := p.userService.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user when getting calendar: %w", err)
	}
	switch currentUser.Settings.ExternalCalendarType {
	case user.GoogleCalendar:
		return p.googleService.GetCalendar(ctx, currentUser.Settings.GoogleCalendar.CalendarId)
	case user.NoExternalCalendar, "":
		log.Trace("no external calendar configured for user")
		return emptyCalendar{}, nil
	}
	return nil, fmt.Errorf("unknown calendar type: %s", currentUser.Settings.ExternalCalendarType)
}

func (p *Provider) GetEvents(ctx context.Context, from time.Time, to time.Time) ([]ExternalEvent, error) {
	cal, err := p.getCalendar(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar when getting events: %w", err)
	}
	return cal.GetEvents(ctx, from, to)
}

// emptyCalendar is the source used when the user has no external calendar.
type emptyCalendar struct{}

func (emptyCalendar) GetEvents(ctx context.Context, from time.Time, to time.Time) ([]ExternalEvent, error) {
	return []ExternalEvent{}, nil
}
