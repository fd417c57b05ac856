package agenda

import (
	"encoding/json"
	"net/http"

	"github.com/agendly/agendly/internal/event_bus"
	"github.com/agendly/agendly/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	bus     *event_bus.EventBus
}

func NewHandler(service *Service, bus *event_bus.EventBus) *Handler {
	return &Handler{service: service, bus: bus}
}

type BlockDTO struct {
	EventID      string  `json:"eventId"`
	Title        string  `json:"title"`
	Contact      string  `json:"contact"`
	Category     string  `json:"category"`
	Source       string  `json:"source"`
	Editable     bool    `json:"editable"`
	Top          float64 `json:"top"`
	Height       float64 `json:"height"`
	Short        bool    `json:"short"`
	Overnight    bool    `json:"overnight"`
	Continuation bool    `json:"continuation"`
	Label        string  `json:"label"`
}

type AllDayEventDTO struct {
	EventID  string `json:"eventId"`
	Title    string `json:"title"`
	Contact  string `json:"contact"`
	Source   string `json:"source"`
	Editable bool   `json:"editable"`
}

type DayViewDTO struct {
	Date          string           `json:"date"`
	Today         bool             `json:"today"`
	Timed         []BlockDTO       `json:"timed"`
	Continuations []BlockDTO       `json:"continuations"`
	AllDay        []AllDayEventDTO `json:"allDay"`
}

type SkipDTO struct {
	RecordID string `json:"recordId"`
	Reason   string `json:"reason"`
}

type ScheduleDTO struct {
	Anchor           string       `json:"anchor"`
	View             string       `json:"view"`
	Days             []DayViewDTO `json:"days"`
	Skipped          []SkipDTO    `json:"skipped"`
	IndicatorPercent float64      `json:"indicatorPercent"`
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	anchor, mode, ok := h.parseViewParams(w, r)
	if !ok {
		return
	}

	schedule, err := h.service.Schedule(r.Context(), anchor, mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(scheduleToDTO(schedule)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	anchor, mode, ok := h.parseViewParams(w, r)
	if !ok {
		return
	}

	direction := Forward
	if r.URL.Query().Get("direction") == "backward" {
		direction = Backward
	}

	next := Navigate(anchor, mode, direction)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"date": next.String()}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetIndicator(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	position := map[string]float64{"percent": h.service.Indicator().PositionPercent()}
	if err := json.NewEncoder(w).Encode(position); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

type selectionDTO struct {
	Action   string `json:"action"`
	EventID  string `json:"eventId,omitempty"`
	Source   string `json:"source,omitempty"`
	Title    string `json:"title,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeSlot string `json:"timeSlot,omitempty"`
}

// ReportSelection receives user interaction with laid-out blocks from the
// rendering layer and republishes it on the bus. The engine itself performs
// no navigation or persistence in response.
func (h *Handler) ReportSelection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto selectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	switch dto.Action {
	case "selected":
		h.publish(event_bus.NewEvent(ctx, event_bus.AgendaEventSelected, event_bus.EventSelection{
			EventID: dto.EventID,
			Source:  dto.Source,
			Title:   dto.Title,
		}))
	case "create":
		h.publish(event_bus.NewEvent(ctx, event_bus.AgendaCreateRequested, event_bus.CreateRequest{
			Date:     dto.Date,
			TimeSlot: dto.TimeSlot,
		}))
	case "edit":
		h.publish(event_bus.NewEvent(ctx, event_bus.AgendaEditRequested, event_bus.EventSelection{
			EventID: dto.EventID,
			Source:  dto.Source,
			Title:   dto.Title,
		}))
	case "delete":
		h.publish(event_bus.NewEvent(ctx, event_bus.AgendaDeleteRequested, event_bus.EventSelection{
			EventID: dto.EventID,
			Source:  dto.Source,
			Title:   dto.Title,
		}))
	default:
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Unknown selection action",
			Details: "action must be one of: selected, create, edit, delete",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) publish(e event_bus.Event) {
	if err := h.bus.Publish(e); err != nil {
		log.Errorf("failed to publish selection event: %v", err)
	}
}

func (h *Handler) parseViewParams(w http.ResponseWriter, r *http.Request) (Date, ViewMode, bool) {
	anchor := h.service.Today()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := ParseDate(dateParam)
		if err != nil {
			writeBadRequest(w, "Invalid date format", "'date' must be in YYYY-MM-DD format")
			return Date{}, "", false
		}
		anchor = parsed
	}

	mode, err := ParseViewMode(r.URL.Query().Get("view"))
	if err != nil {
		writeBadRequest(w, "Invalid view mode", "'view' must be one of: day, threeDay, month")
		return Date{}, "", false
	}

	return anchor, mode, true
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func scheduleToDTO(s *ScheduleView) ScheduleDTO {
	days := make([]DayViewDTO, 0, len(s.Days))
	for _, day := range s.Days {
		days = append(days, dayViewToDTO(day))
	}
	skipped := make([]SkipDTO, 0, len(s.Skipped))
	for _, skip := range s.Skipped {
		skipped = append(skipped, SkipDTO{RecordID: skip.RecordID, Reason: string(skip.Reason)})
	}
	return ScheduleDTO{
		Anchor:           s.Anchor.String(),
		View:             string(s.Mode),
		Days:             days,
		Skipped:          skipped,
		IndicatorPercent: s.IndicatorPercent,
	}
}

func dayViewToDTO(day DayView) DayViewDTO {
	timed := make([]BlockDTO, 0, len(day.Timed))
	for _, block := range day.Timed {
		timed = append(timed, blockToDTO(block))
	}
	continuations := make([]BlockDTO, 0, len(day.Continuations))
	for _, block := range day.Continuations {
		continuations = append(continuations, blockToDTO(block))
	}
	allDay := make([]AllDayEventDTO, 0, len(day.AllDay))
	for _, event := range day.AllDay {
		allDay = append(allDay, AllDayEventDTO{
			EventID:  event.ID,
			Title:    event.Title,
			Contact:  event.Contact,
			Source:   string(event.Source),
			Editable: event.Editable(),
		})
	}
	return DayViewDTO{
		Date:          day.Date.String(),
		Today:         day.Today,
		Timed:         timed,
		Continuations: continuations,
		AllDay:        allDay,
	}
}

func blockToDTO(block Block) BlockDTO {
	return BlockDTO{
		EventID:      block.Event.ID,
		Title:        block.Event.Title,
		Contact:      block.Event.Contact,
		Category:     string(block.Event.Category),
		Source:       string(block.Event.Source),
		Editable:     block.Event.Editable(),
		Top:          block.Top,
		Height:       block.Height,
		Short:        block.Short,
		Overnight:    block.Overnight,
		Continuation: block.Continuation,
		Label:        block.Label,
	}
}
