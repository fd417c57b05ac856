package agenda

import "fmt"

type Source string

const (
	SourceLocal    Source = "local"
	SourceExternal Source = "external"
)

type Category string

const (
	CategoryCall     Category = "call"
	CategoryVideo    Category = "video"
	CategoryMeeting  Category = "meeting"
	CategoryExternal Category = "external"
)

// Event is the common representation both sources normalize into before any
// layout logic runs. Events are immutable value objects materialized per
// render pass; the engine keeps no state of its own besides the clock.
type Event struct {
	ID    string
	Title string
	Date  Date
	// StartMinutes and EndMinutes are minutes since midnight. EndMinutes may
	// be smaller than StartMinutes: that defines an overnight event wrapping
	// past midnight, so consumers must not assume end >= start.
	StartMinutes int
	EndMinutes   int
	Contact      string
	Category     Category
	AllDay       bool
	Source       Source
	Location     string
	Description  string
	Color        string
}

// Editable reports whether the event may be edited or deleted. Externally
// synced events are read-only.
func (e Event) Editable() bool {
	return e.Source == SourceLocal
}

type SkipReason string

const (
	SkipInvalidDate  SkipReason = "invalid_date"
	SkipInvalidTime  SkipReason = "invalid_time"
	SkipMissingStart SkipReason = "missing_start"
	SkipMissingEnd   SkipReason = "missing_end"
)

// SkipError records why a single source record was excluded during
// normalization. Skips are per-record and never abort a batch: a single bad
// record must not blank the whole calendar.
type SkipError struct {
	RecordID string
	Reason   SkipReason
}

func (e SkipError) Error() string {
	return fmt.Sprintf("record %s skipped: %s", e.RecordID, e.Reason)
}
