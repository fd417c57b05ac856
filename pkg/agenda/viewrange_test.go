package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewMode(t *testing.T) {
	testCases := []struct {
		input   string
		want    ViewMode
		wantErr bool
	}{
		{input: "day", want: ViewDay},
		{input: "threeDay", want: ViewThreeDay},
		{input: "month", want: ViewMonth},
		{input: "", want: ViewDay},
		{input: "week", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run("input "+tc.input, func(t *testing.T) {
			got, err := ParseViewMode(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVisibleDates_Day(t *testing.T) {
	anchor := Date{Year: 2026, Month: time.March, Day: 15}

	dates := VisibleDates(anchor, ViewDay)

	assert.Equal(t, []Date{anchor}, dates)
}

func TestVisibleDates_ThreeDay(t *testing.T) {
	anchor := Date{Year: 2026, Month: time.March, Day: 31}

	dates := VisibleDates(anchor, ViewThreeDay)

	require.Len(t, dates, 3)
	assert.Equal(t, anchor, dates[0])
	assert.Equal(t, anchor.AddDays(1), dates[1])
	assert.Equal(t, anchor.AddDays(2), dates[2])
}

func TestVisibleDates_Month(t *testing.T) {
	// February 2026 starts on a Sunday, so the grid leads with six January cells.
	anchor := Date{Year: 2026, Month: time.February, Day: 14}

	dates := VisibleDates(anchor, ViewMonth)

	require.Len(t, dates, 42)
	assert.Equal(t, Date{Year: 2026, Month: time.January, Day: 26}, dates[0])
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, Date{Year: 2026, Month: time.March, Day: 8}, dates[41])

	// Consecutive cells, whole month covered.
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDays(1), dates[i])
	}
	assert.Contains(t, dates, Date{Year: 2026, Month: time.February, Day: 1})
	assert.Contains(t, dates, Date{Year: 2026, Month: time.February, Day: 28})
}

func TestVisibleDates_MonthStartingOnMonday(t *testing.T) {
	// June 2026 starts on a Monday: no leading cells from May.
	anchor := Date{Year: 2026, Month: time.June, Day: 10}

	dates := VisibleDates(anchor, ViewMonth)

	require.Len(t, dates, 42)
	assert.Equal(t, Date{Year: 2026, Month: time.June, Day: 1}, dates[0])
}

func TestNavigate(t *testing.T) {
	testCases := []struct {
		name      string
		anchor    Date
		mode      ViewMode
		direction Direction
		want      Date
	}{
		{
			name:      "day forward",
			anchor:    Date{Year: 2026, Month: time.March, Day: 15},
			mode:      ViewDay,
			direction: Forward,
			want:      Date{Year: 2026, Month: time.March, Day: 16},
		},
		{
			name:      "day backward over month boundary",
			anchor:    Date{Year: 2026, Month: time.March, Day: 1},
			mode:      ViewDay,
			direction: Backward,
			want:      Date{Year: 2026, Month: time.February, Day: 28},
		},
		{
			name:      "three day steps by two",
			anchor:    Date{Year: 2026, Month: time.March, Day: 15},
			mode:      ViewThreeDay,
			direction: Forward,
			want:      Date{Year: 2026, Month: time.March, Day: 17},
		},
		{
			name:      "three day backward steps by two",
			anchor:    Date{Year: 2026, Month: time.March, Day: 15},
			mode:      ViewThreeDay,
			direction: Backward,
			want:      Date{Year: 2026, Month: time.March, Day: 13},
		},
		{
			name:      "month forward lands on first",
			anchor:    Date{Year: 2026, Month: time.January, Day: 31},
			mode:      ViewMonth,
			direction: Forward,
			want:      Date{Year: 2026, Month: time.February, Day: 1},
		},
		{
			name:      "month backward over year boundary",
			anchor:    Date{Year: 2026, Month: time.January, Day: 15},
			mode:      ViewMonth,
			direction: Backward,
			want:      Date{Year: 2025, Month: time.December, Day: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Navigate(tc.anchor, tc.mode, tc.direction))
		})
	}
}
