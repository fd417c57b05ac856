package app

import (
	"github.com/agendly/agendly/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Agenda
	r.HandleFunc("/api/agenda", deps.AgendaHandler.GetSchedule).Methods("GET")
	r.HandleFunc("/api/agenda/navigate", deps.AgendaHandler.Navigate).Methods("GET")
	r.HandleFunc("/api/agenda/indicator", deps.AgendaHandler.GetIndicator).Methods("GET")
	r.HandleFunc("/api/agenda/selection", deps.AgendaHandler.ReportSelection).Methods("POST")

	// Meetings
	r.HandleFunc("/api/meeting", deps.MeetingHandler.GetMeetings).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/meeting", deps.MeetingHandler.CreateMeeting).Methods("POST")
	r.HandleFunc("/api/meeting/{meetingId}", deps.MeetingHandler.UpdateMeeting).Methods("PUT")
	r.HandleFunc("/api/meeting/{meetingId}", deps.MeetingHandler.DeleteMeeting).Methods("DELETE")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
}
