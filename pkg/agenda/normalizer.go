package agenda

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agendly/agendly/pkg/meeting"
	"github.com/agendly/agendly/pkg/provider"
	log "github.com/sirupsen/logrus"
)

const minutesPerDay = 24 * 60

// NormalizeLocal maps a stored meeting record into the common Event shape.
// A malformed date or time field yields a SkipError instead of an Event.
func NormalizeLocal(record meeting.Meeting) (Event, error) {
	date, err := ParseDate(record.Date)
	if err != nil {
		return Event{}, SkipError{RecordID: record.ID, Reason: SkipInvalidDate}
	}

	startMinutes, endMinutes, err := parseTimeRange(record.Time)
	if err != nil {
		return Event{}, SkipError{RecordID: record.ID, Reason: SkipInvalidTime}
	}

	return Event{
		ID:           record.ID,
		Title:        record.Title,
		Date:         date,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		Contact:      record.Contact,
		Category:     Category(record.Category),
		Source:       SourceLocal,
		Location:     record.Location,
		Description:  record.Description,
	}, nil
}

// NormalizeExternal maps an external provider record into the common Event
// shape. The date comes from the start instant; minute offsets come from the
// local wall clock of start and end. Records missing a start or end instant
// are skipped, all-day records included.
func NormalizeExternal(record provider.ExternalEvent) (Event, error) {
	if record.Start.IsZero() {
		return Event{}, SkipError{RecordID: record.ID, Reason: SkipMissingStart}
	}
	if record.End.IsZero() {
		return Event{}, SkipError{RecordID: record.ID, Reason: SkipMissingEnd}
	}

	event := Event{
		ID:          record.ID,
		Title:       record.Title,
		Date:        FromTime(record.Start),
		Contact:     record.Title,
		Category:    CategoryExternal,
		AllDay:      record.AllDay,
		Source:      SourceExternal,
		Location:    record.Location,
		Description: record.Description,
		Color:       record.Color,
	}
	if !record.AllDay {
		event.StartMinutes = record.Start.Hour()*60 + record.Start.Minute()
		event.EndMinutes = record.End.Hour()*60 + record.End.Minute()
	}
	return event, nil
}

// NormalizeLocalAll normalizes a batch of meeting records, collecting skipped
// records separately so callers can tell why each one was dropped.
func NormalizeLocalAll(records []meeting.Meeting) ([]Event, []SkipError) {
	events := make([]Event, 0, len(records))
	var skipped []SkipError
	for _, record := range records {
		event, err := NormalizeLocal(record)
		if err != nil {
			skipped = append(skipped, asSkip(err))
			continue
		}
		events = append(events, event)
	}
	return events, skipped
}

// NormalizeExternalAll normalizes a batch of external records; per-record
// failures never abort the batch.
func NormalizeExternalAll(records []provider.ExternalEvent) ([]Event, []SkipError) {
	events := make([]Event, 0, len(records))
	var skipped []SkipError
	for _, record := range records {
		event, err := NormalizeExternal(record)
		if err != nil {
			skipped = append(skipped, asSkip(err))
			continue
		}
		events = append(events, event)
	}
	return events, skipped
}

func asSkip(err error) SkipError {
	if skip, ok := err.(SkipError); ok {
		log.Debugf("excluding record from agenda: %v", skip)
		return skip
	}
	log.Debugf("excluding record from agenda: %v", err)
	return SkipError{Reason: SkipInvalidDate}
}

// parseTimeRange parses "HH:MM - HH:MM" into start and end minute offsets.
func parseTimeRange(value string) (int, int, error) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time range %q: missing separator", value)
	}
	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time range %q: %w", value, err)
	}
	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time range %q: %w", value, err)
	}
	return start, end, nil
}

// parseClock parses a 24-hour "HH:MM" string into minutes since midnight.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", value)
	}
	return hours*60 + minutes, nil
}
