package agenda

import "fmt"

const (
	hoursPerDay = 24

	// shortEventMaxHours is the duration below which an event renders as a
	// compact single-line block. 45 minutes exactly is not short.
	shortEventMaxHours = 0.75
)

// Block is the computed position of one timed event on a 24-hour grid with a
// fixed per-hour height. Top and Height share the hour height's unit.
type Block struct {
	Event        Event
	Top          float64
	Height       float64
	Overnight    bool
	Continuation bool
	Short        bool
	Label        string
}

// StartHour returns the fractional hour the event starts at.
func StartHour(e Event) float64 {
	return float64(e.StartMinutes) / 60
}

// EndHour returns the fractional hour the event ends at.
func EndHour(e Event) float64 {
	return float64(e.EndMinutes) / 60
}

// IsOvernight reports whether the event wraps past midnight.
func IsOvernight(e Event) bool {
	return e.EndMinutes < e.StartMinutes
}

// DurationHours returns the event's duration in fractional hours as rendered
// on its start day. Overnight events are clipped at midnight, so their
// duration runs from the start time to 24:00. A same-day event with
// end == start has duration zero; flooring the rendered height to a visible
// minimum is a rendering concern, not a layout one.
func DurationHours(e Event) float64 {
	if IsOvernight(e) {
		return hoursPerDay - StartHour(e)
	}
	return EndHour(e) - StartHour(e)
}

// IsShort reports whether a duration qualifies for compact rendering.
func IsShort(durationHours float64) bool {
	return durationHours < shortEventMaxHours
}

// Layout positions a timed event on its start day's grid. Overnight events
// are clipped at midnight; the spilled remainder is rendered separately via
// ContinuationLayout on the following day.
func Layout(e Event, hourHeight float64) Block {
	duration := DurationHours(e)
	overnight := IsOvernight(e)

	label := fmt.Sprintf("%s - %s", clockLabel(e.StartMinutes), clockLabel(e.EndMinutes))
	if overnight {
		label = fmt.Sprintf("%s →", clockLabel(e.StartMinutes))
	}

	return Block{
		Event:     e,
		Top:       StartHour(e) * hourHeight,
		Height:    duration * hourHeight,
		Overnight: overnight,
		Short:     IsShort(duration),
		Label:     label,
	}
}

// ContinuationLayout positions the after-midnight remainder of an overnight
// event on the following day's column. It starts at the top of the grid and
// its label substitutes an arrow glyph for the omitted start time.
func ContinuationLayout(e Event, hourHeight float64) Block {
	duration := EndHour(e)

	return Block{
		Event:        e,
		Top:          0,
		Height:       duration * hourHeight,
		Overnight:    true,
		Continuation: true,
		Short:        IsShort(duration),
		Label:        fmt.Sprintf("→ %s", clockLabel(e.EndMinutes)),
	}
}

func clockLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
