package agenda

import (
	"testing"
	"time"

	"github.com/agendly/agendly/pkg/meeting"
	"github.com/agendly/agendly/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocal(t *testing.T) {
	testCases := []struct {
		name       string
		record     meeting.Meeting
		wantStart  int
		wantEnd    int
		skipReason SkipReason
	}{
		{
			name: "morning meeting",
			record: meeting.Meeting{
				ID:       "m1",
				Date:     "2026-03-15",
				Time:     "09:00 - 10:30",
				Category: meeting.CategoryCall,
				Title:    "Quarterly review",
				Contact:  "Alex Demir",
			},
			wantStart: 9 * 60,
			wantEnd:   10*60 + 30,
		},
		{
			name: "overnight meeting keeps raw minute offsets",
			record: meeting.Meeting{
				ID:      "m2",
				Date:    "2026-03-15",
				Time:    "23:30 - 00:15",
				Title:   "Late call",
				Contact: "Sam Ono",
			},
			wantStart: 23*60 + 30,
			wantEnd:   15,
		},
		{
			name: "malformed date",
			record: meeting.Meeting{
				ID:   "m3",
				Date: "15.03.2026",
				Time: "09:00 - 10:00",
			},
			skipReason: SkipInvalidDate,
		},
		{
			name: "time range without separator",
			record: meeting.Meeting{
				ID:   "m4",
				Date: "2026-03-15",
				Time: "09:00",
			},
			skipReason: SkipInvalidTime,
		},
		{
			name: "hour out of range",
			record: meeting.Meeting{
				ID:   "m5",
				Date: "2026-03-15",
				Time: "25:00 - 26:00",
			},
			skipReason: SkipInvalidTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := NormalizeLocal(tc.record)
			if tc.skipReason != "" {
				var skip SkipError
				require.ErrorAs(t, err, &skip)
				assert.Equal(t, tc.record.ID, skip.RecordID)
				assert.Equal(t, tc.skipReason, skip.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.record.ID, event.ID)
			assert.Equal(t, tc.wantStart, event.StartMinutes)
			assert.Equal(t, tc.wantEnd, event.EndMinutes)
			assert.Equal(t, SourceLocal, event.Source)
			assert.True(t, event.Editable())
		})
	}
}

func TestNormalizeExternal(t *testing.T) {
	start := time.Date(2026, 3, 15, 13, 0, 0, 0, time.Local)

	t.Run("timed event", func(t *testing.T) {
		event, err := NormalizeExternal(provider.ExternalEvent{
			ID:    "ext1",
			Title: "Design sync",
			Start: start,
			End:   start.Add(45 * time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, Date{Year: 2026, Month: time.March, Day: 15}, event.Date)
		assert.Equal(t, 13*60, event.StartMinutes)
		assert.Equal(t, 13*60+45, event.EndMinutes)
		assert.Equal(t, SourceExternal, event.Source)
		assert.Equal(t, CategoryExternal, event.Category)
		// External events expose their title as the contact line.
		assert.Equal(t, "Design sync", event.Contact)
		assert.False(t, event.Editable())
	})

	t.Run("all-day event keeps zero minute offsets", func(t *testing.T) {
		event, err := NormalizeExternal(provider.ExternalEvent{
			ID:     "ext2",
			Title:  "Conference",
			Start:  start,
			End:    start.Add(24 * time.Hour),
			AllDay: true,
		})
		require.NoError(t, err)
		assert.True(t, event.AllDay)
		assert.Zero(t, event.StartMinutes)
		assert.Zero(t, event.EndMinutes)
	})

	t.Run("all-day event missing end is skipped too", func(t *testing.T) {
		_, err := NormalizeExternal(provider.ExternalEvent{
			ID:     "ext5",
			Title:  "Open-ended",
			Start:  start,
			AllDay: true,
		})
		var skip SkipError
		require.ErrorAs(t, err, &skip)
		assert.Equal(t, SkipMissingEnd, skip.Reason)
	})

	t.Run("missing start", func(t *testing.T) {
		_, err := NormalizeExternal(provider.ExternalEvent{ID: "ext3", End: start})
		var skip SkipError
		require.ErrorAs(t, err, &skip)
		assert.Equal(t, SkipMissingStart, skip.Reason)
	})

	t.Run("missing end on timed event", func(t *testing.T) {
		_, err := NormalizeExternal(provider.ExternalEvent{ID: "ext4", Start: start})
		var skip SkipError
		require.ErrorAs(t, err, &skip)
		assert.Equal(t, SkipMissingEnd, skip.Reason)
	})
}

func TestNormalizeLocalAll_BadRecordDoesNotAbortBatch(t *testing.T) {
	records := []meeting.Meeting{
		{ID: "ok1", Date: "2026-03-15", Time: "09:00 - 10:00", Title: "First"},
		{ID: "bad", Date: "2026-03-15", Time: "garbage", Title: "Broken"},
		{ID: "ok2", Date: "2026-03-15", Time: "11:00 - 12:00", Title: "Second"},
	}

	events, skipped := NormalizeLocalAll(records)

	require.Len(t, events, 2)
	assert.Equal(t, "ok1", events[0].ID)
	assert.Equal(t, "ok2", events[1].ID)
	require.Len(t, skipped, 1)
	assert.Equal(t, "bad", skipped[0].RecordID)
	assert.Equal(t, SkipInvalidTime, skipped[0].Reason)
}
