package agenda

import (
	"fmt"
	"time"
)

type ViewMode string

const (
	ViewDay      ViewMode = "day"
	ViewThreeDay ViewMode = "threeDay"
	ViewMonth    ViewMode = "month"
)

// ParseViewMode validates a view mode string, defaulting to the day view when
// empty.
func ParseViewMode(value string) (ViewMode, error) {
	switch ViewMode(value) {
	case ViewDay, ViewThreeDay, ViewMonth:
		return ViewMode(value), nil
	case "":
		return ViewDay, nil
	}
	return "", fmt.Errorf("unknown view mode: %q", value)
}

type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

const (
	threeDayWindow = 3
	// threeDayStep is the navigation delta of the 3-day view. It moves the
	// anchor by 2 days, leaving a 1-day overlap between consecutive windows.
	threeDayStep = 2

	// monthGridCells is the fixed 6x7 cell count of the month view.
	monthGridCells = 42
)

// VisibleDates returns the dates a view renders for the given anchor.
//
// The day view shows the anchor alone. The 3-day view shows three consecutive
// days starting at the anchor (a sliding window, not an ISO week). The month
// view always shows 42 cells starting on the Monday on or before the 1st of
// the anchor's month; leading and trailing cells from adjacent months are
// included.
func VisibleDates(anchor Date, mode ViewMode) []Date {
	switch mode {
	case ViewThreeDay:
		dates := make([]Date, threeDayWindow)
		for i := range dates {
			dates[i] = anchor.AddDays(i)
		}
		return dates
	case ViewMonth:
		first := Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
		offset := (int(first.Weekday()) - int(time.Monday) + 7) % 7
		start := first.AddDays(-offset)
		dates := make([]Date, monthGridCells)
		for i := range dates {
			dates[i] = start.AddDays(i)
		}
		return dates
	default:
		return []Date{anchor}
	}
}

// Navigate returns the new anchor after stepping the view in the given
// direction.
func Navigate(anchor Date, mode ViewMode, direction Direction) Date {
	switch mode {
	case ViewThreeDay:
		return anchor.AddDays(int(direction) * threeDayStep)
	case ViewMonth:
		first := Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
		return FromTime(first.Time().AddDate(0, int(direction), 0))
	default:
		return anchor.AddDays(int(direction))
	}
}
