package agenda

import (
	"context"
	"time"

	"github.com/agendly/agendly/internal/utils"
)

// tickInterval is deliberately coarse: the indicator is a visual aid, not a
// precise clock.
const tickInterval = time.Minute

// CurrentTimeIndicator computes the vertical position of "now" on the
// 24-hour axis. It is only meaningful for the grid column whose date is
// today.
type CurrentTimeIndicator struct {
	clock utils.Clock
}

func NewCurrentTimeIndicator(clock utils.Clock) *CurrentTimeIndicator {
	return &CurrentTimeIndicator{clock: clock}
}

// PositionPercent returns the position of the current time as a percentage of
// the 24-hour axis, in [0, 100).
func (i *CurrentTimeIndicator) PositionPercent() float64 {
	now := i.clock.Now()
	minutes := now.Hour()*60 + now.Minute()
	return float64(minutes) / minutesPerDay * 100
}

// VisibleOn reports whether the indicator should be drawn on the column for
// the given date.
func (i *CurrentTimeIndicator) VisibleOn(date Date) bool {
	return date.Equal(Today(i.clock))
}

// Run recomputes the indicator position every minute and reports it through
// onTick, starting with an immediate tick. The ticker is owned by this call
// and released when ctx is cancelled, so the view's lifecycle bounds the
// resource.
func (i *CurrentTimeIndicator) Run(ctx context.Context, onTick func(percent float64)) {
	onTick(i.PositionPercent())

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onTick(i.PositionPercent())
		}
	}
}
