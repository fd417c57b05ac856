package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agendly/agendly/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Uid         string      `json:"uid"`
	Username    string      `json:"username"`
	DisplayName string      `json:"displayName"`
	Settings    SettingsDTO `json:"settings"`
}

type SettingsDTO struct {
	Timezone             string                    `json:"timezone"`
	WeekFirstDay         string                    `json:"weekFirstDay"`
	ExternalCalendarType ExternalCalendarType      `json:"externalCalendarType"`
	GoogleCalendar       GoogleCalendarSettingsDTO `json:"googleCalendar"`
}

type GoogleCalendarSettingsDTO struct {
	CalendarId string `json:"calendarId"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating user")

	var userDTO UserDTO
	if err := json.NewDecoder(r.Body).Decode(&userDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if len(userDTO.Username) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Username is required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.userService.CreateUser(r.Context(), dtoToUser(userDTO))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(userToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	currentUser, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoUser) || errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(userToDTO(currentUser)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var userDTO UserDTO
	if err := json.NewDecoder(r.Body).Decode(&userDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.userService.UpdateUser(r.Context(), dtoToUser(userDTO))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(userToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func userToDTO(u User) UserDTO {
	return UserDTO{
		Uid:         u.Uid,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Settings: SettingsDTO{
			Timezone:             u.Settings.Timezone,
			WeekFirstDay:         u.Settings.WeekFirstDay.String(),
			ExternalCalendarType: u.Settings.ExternalCalendarType,
			GoogleCalendar: GoogleCalendarSettingsDTO{
				CalendarId: u.Settings.GoogleCalendar.CalendarId,
			},
		},
	}
}

func dtoToUser(dto UserDTO) User {
	return User{
		Uid:         dto.Uid,
		Username:    dto.Username,
		DisplayName: dto.DisplayName,
		Settings: Settings{
			Timezone:             dto.Settings.Timezone,
			WeekFirstDay:         parseWeekday(dto.Settings.WeekFirstDay),
			ExternalCalendarType: dto.Settings.ExternalCalendarType,
			GoogleCalendar: GoogleCalendarSettings{
				CalendarId: dto.Settings.GoogleCalendar.CalendarId,
			},
		},
	}
}

func parseWeekday(name string) time.Weekday {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d
		}
	}
	return time.Monday
}
