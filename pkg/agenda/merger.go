package agenda

// DaySchedule is the combined event list for one calendar date. Timed events
// go onto the hour grid; all-day events live in a separate lane and never
// reach the grid layout.
type DaySchedule struct {
	Date   Date
	Timed  []Event
	AllDay []Event
}

// EventsForDate filters both normalized collections down to the given date.
// Timed events keep source order, local first then external; no deduplication
// happens across sources (they are assumed disjoint), so the merged order is
// also the z-order for visually overlapping blocks.
func EventsForDate(date Date, locals []Event, externals []Event) DaySchedule {
	schedule := DaySchedule{
		Date:   date,
		Timed:  make([]Event, 0, len(locals)+len(externals)),
		AllDay: []Event{},
	}

	for _, event := range locals {
		if event.Date.Equal(date) {
			schedule.Timed = append(schedule.Timed, event)
		}
	}
	for _, event := range externals {
		if !event.Date.Equal(date) {
			continue
		}
		if event.AllDay {
			schedule.AllDay = append(schedule.AllDay, event)
		} else {
			schedule.Timed = append(schedule.Timed, event)
		}
	}

	return schedule
}
