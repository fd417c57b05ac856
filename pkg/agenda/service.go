package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/agendly/agendly/internal/utils"
	"github.com/agendly/agendly/pkg/meeting"
	"github.com/agendly/agendly/pkg/provider"
	log "github.com/sirupsen/logrus"
)

// MeetingSource reads the closer's locally stored meetings.
type MeetingSource interface {
	GetMeetings(ctx context.Context, fromDate, toDate string) ([]meeting.Meeting, error)
}

// ExternalSource reads the synced external calendar.
type ExternalSource interface {
	GetEvents(ctx context.Context, from time.Time, to time.Time) ([]provider.ExternalEvent, error)
}

// DayView is the fully laid-out schedule of one visible date.
type DayView struct {
	Date          Date
	Today         bool
	Timed         []Block
	Continuations []Block
	AllDay        []Event
}

// ScheduleView is the engine output for one anchor/view-mode combination.
type ScheduleView struct {
	Anchor Date
	Mode   ViewMode
	Days   []DayView
	// Skipped lists source records excluded during normalization, with the
	// reason each one was dropped.
	Skipped          []SkipError
	IndicatorPercent float64
}

type Service struct {
	meetings   MeetingSource
	external   ExternalSource
	indicator  *CurrentTimeIndicator
	clock      utils.Clock
	hourHeight float64
}

func NewService(meetings MeetingSource, external ExternalSource, clock utils.Clock, hourHeight float64) *Service {
	return &Service{
		meetings:   meetings,
		external:   external,
		indicator:  NewCurrentTimeIndicator(clock),
		clock:      clock,
		hourHeight: hourHeight,
	}
}

// Today returns the current calendar date, used as the default anchor.
func (s *Service) Today() Date {
	return Today(s.clock)
}

// Indicator exposes the current-time indicator bound to the service clock.
func (s *Service) Indicator() *CurrentTimeIndicator {
	return s.indicator
}

// Schedule fetches both sources for the view's visible range, normalizes the
// records into Events and lays every visible date out. The fetch range starts
// one day before the first visible date so overnight events from the previous
// day can contribute their continuation blocks.
func (s *Service) Schedule(ctx context.Context, anchor Date, mode ViewMode) (*ScheduleView, error) {
	dates := VisibleDates(anchor, mode)
	fetchFrom := dates[0].AddDays(-1)
	fetchTo := dates[len(dates)-1]

	records, err := s.meetings.GetMeetings(ctx, fetchFrom.String(), fetchTo.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get meetings: %w", err)
	}
	externalRecords, err := s.external.GetEvents(ctx, fetchFrom.Time(), fetchTo.AddDays(1).Time())
	if err != nil {
		return nil, fmt.Errorf("failed to get external events: %w", err)
	}

	locals, localSkips := NormalizeLocalAll(records)
	externals, externalSkips := NormalizeExternalAll(externalRecords)
	skipped := append(localSkips, externalSkips...)
	if len(skipped) > 0 {
		log.Debugf("excluded %d record(s) from agenda view", len(skipped))
	}

	today := Today(s.clock)
	days := make([]DayView, 0, len(dates))
	for _, date := range dates {
		days = append(days, s.layoutDay(date, today, locals, externals))
	}

	return &ScheduleView{
		Anchor:           anchor,
		Mode:             mode,
		Days:             days,
		Skipped:          skipped,
		IndicatorPercent: s.indicator.PositionPercent(),
	}, nil
}

func (s *Service) layoutDay(date, today Date, locals, externals []Event) DayView {
	schedule := EventsForDate(date, locals, externals)

	timed := make([]Block, 0, len(schedule.Timed))
	for _, event := range schedule.Timed {
		timed = append(timed, Layout(event, s.hourHeight))
	}

	// Overnight events of the previous day spill into this column.
	previous := EventsForDate(date.AddDays(-1), locals, externals)
	continuations := make([]Block, 0)
	for _, event := range previous.Timed {
		if IsOvernight(event) {
			continuations = append(continuations, ContinuationLayout(event, s.hourHeight))
		}
	}

	return DayView{
		Date:          date,
		Today:         date.Equal(today),
		Timed:         timed,
		Continuations: continuations,
		AllDay:        schedule.AllDay,
	}
}
