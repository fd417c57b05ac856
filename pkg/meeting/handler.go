package meeting

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agendly/agendly/internal/rest"
	"github.com/gorilla/mux"
)

type Handler struct {
	meetings *Service
}

type MeetingDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Contact     string `json:"contact"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

func (h *Handler) GetMeetings(w http.ResponseWriter, r *http.Request) {
	fromDate := r.URL.Query().Get("from")
	toDate := r.URL.Query().Get("to")
	if fromDate == "" || toDate == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Missing date range",
			Details: "'from' and 'to' must be provided in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	meetings, err := h.meetings.GetMeetings(r.Context(), fromDate, toDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]MeetingDTO, 0, len(meetings))
	for _, m := range meetings {
		dtos = append(dtos, meetingToDTO(m))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var dto MeetingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.meetings.AddMeeting(r.Context(), dtoToMeeting(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(meetingToDTO(*added)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	var dto MeetingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	dto.ID = vars["meetingId"]

	modified, err := h.meetings.ModifyMeeting(r.Context(), dtoToMeeting(dto))
	if err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			http.Error(w, "meeting not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(meetingToDTO(*modified)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	meetingId := vars["meetingId"]
	if err := h.meetings.DeleteMeeting(r.Context(), meetingId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func meetingToDTO(m Meeting) MeetingDTO {
	return MeetingDTO{
		ID:          m.ID,
		Date:        m.Date,
		Time:        m.Time,
		Category:    string(m.Category),
		Title:       m.Title,
		Contact:     m.Contact,
		Location:    m.Location,
		Description: m.Description,
	}
}

func dtoToMeeting(dto MeetingDTO) Meeting {
	return Meeting{
		ID:          dto.ID,
		Date:        dto.Date,
		Time:        dto.Time,
		Category:    Category(dto.Category),
		Title:       dto.Title,
		Contact:     dto.Contact,
		Location:    dto.Location,
		Description: dto.Description,
	}
}
