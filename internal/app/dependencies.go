package app

import (
	"database/sql"

	"github.com/agendly/agendly/internal/config"
	"github.com/agendly/agendly/internal/event_bus"
	"github.com/agendly/agendly/internal/utils"
	"github.com/agendly/agendly/pkg/agenda"
	"github.com/agendly/agendly/pkg/google"
	"github.com/agendly/agendly/pkg/meeting"
	"github.com/agendly/agendly/pkg/provider"
	"github.com/agendly/agendly/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	CalendarProvider *provider.Provider

	MeetingRepo    meeting.Repository
	MeetingService *meeting.Service
	MeetingHandler *meeting.Handler

	AgendaService *agenda.Service
	AgendaHandler *agenda.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.CalendarProvider = provider.NewProvider(deps.UserService, deps.GoogleService)

	deps.MeetingRepo = meeting.NewRepository(db)
	deps.MeetingService = meeting.NewService(deps.MeetingRepo, deps.EventBus)
	deps.MeetingHandler = meeting.NewHandler(deps.MeetingService)

	deps.AgendaService = agenda.NewService(deps.MeetingService, deps.CalendarProvider, deps.Clock, cfg.Agenda.HourHeight)
	deps.AgendaHandler = agenda.NewHandler(deps.AgendaService, deps.EventBus)

	return deps
}
