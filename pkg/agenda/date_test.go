package agenda

import (
	"testing"
	"time"

	"github.com/agendly/agendly/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-03-15",
			want:  Date{Year: 2026, Month: time.March, Day: 15},
		},
		{
			name:  "single digit padded",
			input: "2026-01-05",
			want:  Date{Year: 2026, Month: time.January, Day: 5},
		},
		{
			name:    "wrong separator",
			input:   "2026/03/15",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "2026-13-01",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "tomorrow",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 15, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, SameCalendarDay(morning, morning))
	assert.True(t, SameCalendarDay(morning, evening))
	assert.True(t, SameCalendarDay(evening, morning))
	assert.False(t, SameCalendarDay(evening, nextDay))
	assert.False(t, SameCalendarDay(nextDay, evening))
}

func TestIsToday(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2026, 3, 15, 14, 23, 0, 0, time.Local)}

	assert.True(t, IsToday(clock, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)))
	assert.True(t, IsToday(clock, time.Date(2026, 3, 15, 23, 59, 0, 0, time.Local)))
	assert.False(t, IsToday(clock, time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)))
}

func TestDateAddDays(t *testing.T) {
	date := Date{Year: 2026, Month: time.January, Day: 31}

	assert.Equal(t, Date{Year: 2026, Month: time.February, Day: 1}, date.AddDays(1))
	assert.Equal(t, Date{Year: 2026, Month: time.January, Day: 30}, date.AddDays(-1))
	assert.Equal(t, date, date.AddDays(0))

	// Leap-year February
	assert.Equal(t, Date{Year: 2028, Month: time.February, Day: 29},
		Date{Year: 2028, Month: time.February, Day: 28}.AddDays(1))
}

func TestDateBefore(t *testing.T) {
	a := Date{Year: 2026, Month: time.March, Day: 15}
	b := Date{Year: 2026, Month: time.March, Day: 16}
	c := Date{Year: 2026, Month: time.April, Day: 1}
	d := Date{Year: 2027, Month: time.January, Day: 1}

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.True(t, c.Before(d))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2026-03-05", Date{Year: 2026, Month: time.March, Day: 5}.String())
}
