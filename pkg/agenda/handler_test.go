package agenda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agendly/agendly/internal/event_bus"
	"github.com/agendly/agendly/internal/utils"
	"github.com/agendly/agendly/pkg/meeting"
	"github.com/agendly/agendly/pkg/provider"
	"github.com/agendly/agendly/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*Handler, *event_bus.EventBus, context.Context) {
	t.Helper()
	bus := event_bus.NewEventBus()
	meetings := meeting.NewService(meeting.NewStubRepository(), bus)
	clock := &utils.MockClock{FixedNow: time.Date(2026, 3, 15, 14, 23, 0, 0, time.Local)}
	service := NewService(meetings, provider.NewStubCalendar(), clock, 60)
	ctx := user.WithUser(context.Background(), user.User{Id: 123})
	return NewHandler(service, bus), bus, ctx
}

func TestHandler_GetSchedule_DefaultsToTodayDayView(t *testing.T) {
	handler, _, ctx := setupHandlerTest(t)

	req := httptest.NewRequest("GET", "/api/agenda", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	handler.GetSchedule(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var dto ScheduleDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, "2026-03-15", dto.Anchor)
	assert.Equal(t, "day", dto.View)
	require.Len(t, dto.Days, 1)
	assert.True(t, dto.Days[0].Today)
}

func TestHandler_GetSchedule_InvalidParams(t *testing.T) {
	handler, _, ctx := setupHandlerTest(t)

	req := httptest.NewRequest("GET", "/api/agenda?date=not-a-date", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.GetSchedule(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest("GET", "/api/agenda?view=week", nil).WithContext(ctx)
	w = httptest.NewRecorder()
	handler.GetSchedule(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Navigate(t *testing.T) {
	handler, _, ctx := setupHandlerTest(t)

	req := httptest.NewRequest("GET", "/api/agenda/navigate?date=2026-03-15&view=threeDay&direction=forward", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.Navigate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2026-03-17", body["date"])

	req = httptest.NewRequest("GET", "/api/agenda/navigate?date=2026-03-15&view=day&direction=backward", nil).WithContext(ctx)
	w = httptest.NewRecorder()
	handler.Navigate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2026-03-14", body["date"])
}

func TestHandler_GetIndicator(t *testing.T) {
	handler, _, ctx := setupHandlerTest(t)

	req := httptest.NewRequest("GET", "/api/agenda/indicator", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.GetIndicator(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]float64
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.InDelta(t, float64(14*60+23)/1440*100, body["percent"], 1e-6)
}

func TestHandler_ReportSelection(t *testing.T) {
	handler, bus, ctx := setupHandlerTest(t)

	var selections []event_bus.EventSelection
	unsubscribe := event_bus.SubscribeTyped(bus, event_bus.AgendaEventSelected, func(e event_bus.EventT[event_bus.EventSelection]) error {
		selections = append(selections, e.Data)
		return nil
	})
	defer unsubscribe()

	body := `{"action":"selected","eventId":"m1","source":"local","title":"Quarterly review"}`
	req := httptest.NewRequest("POST", "/api/agenda/selection", strings.NewReader(body)).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.ReportSelection(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, selections, 1)
	assert.Equal(t, "m1", selections[0].EventID)
	assert.Equal(t, "local", selections[0].Source)
}

func TestHandler_ReportSelection_CreateRequest(t *testing.T) {
	handler, bus, ctx := setupHandlerTest(t)

	var requests []event_bus.CreateRequest
	unsubscribe := event_bus.SubscribeTyped(bus, event_bus.AgendaCreateRequested, func(e event_bus.EventT[event_bus.CreateRequest]) error {
		requests = append(requests, e.Data)
		return nil
	})
	defer unsubscribe()

	body := `{"action":"create","date":"2026-03-16","timeSlot":"10:00"}`
	req := httptest.NewRequest("POST", "/api/agenda/selection", strings.NewReader(body)).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.ReportSelection(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, requests, 1)
	assert.Equal(t, "2026-03-16", requests[0].Date)
	assert.Equal(t, "10:00", requests[0].TimeSlot)
}

func TestHandler_ReportSelection_UnknownAction(t *testing.T) {
	handler, _, ctx := setupHandlerTest(t)

	req := httptest.NewRequest("POST", "/api/agenda/selection", strings.NewReader(`{"action":"explode"}`)).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.ReportSelection(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
