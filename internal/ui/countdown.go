package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/five82/prayerclock/internal/prayer"
	"github.com/five82/prayerclock/internal/state"
)

// countdownStatus tells the footer what to show.
type countdownStatus int

const (
	statusWaiting         countdownStatus = iota // no schedule yet
	statusCounting                               // next prayer and countdown known
	statusRefreshRequired                        // table is for another day
	statusNoSchedule                             // table cannot produce a next prayer
)

// countdownState is the UI's view of the upcoming prayer.
type countdownState struct {
	next      prayer.Resolved
	hasNext   bool
	remaining prayer.Countdown
	status    countdownStatus
	err       error
}

// advance recomputes the countdown for now, resolving the next prayer on
// every tick so the footer moves on as soon as a prayer begins. A table for
// another day, or a target that is still not in the future after resolving,
// is stale. The return value is true when the schedule should be refreshed.
func (c *countdownState) advance(snap state.Snapshot, now time.Time) bool {
	if !snap.HasSchedule {
		*c = countdownState{status: statusWaiting}
		return false
	}
	now = snap.Schedule.Now(now)
	table := snap.Schedule.Table

	if !table.IsFor(now) {
		*c = countdownState{
			status: statusRefreshRequired,
			err:    fmt.Errorf("table for %s used on %s", table.Date().Format(time.DateOnly), now.Format(time.DateOnly)),
		}
		return true
	}

	next, err := prayer.ResolveNext(table, now)
	if err != nil {
		*c = countdownState{status: statusNoSchedule, err: err}
		return errors.Is(err, prayer.ErrMissingFajr)
	}

	remaining, err := prayer.CountdownTo(next.At, now)
	if err != nil {
		*c = countdownState{status: statusRefreshRequired, err: err}
		return errors.Is(err, prayer.ErrNegativeDuration)
	}

	*c = countdownState{
		next:      next,
		hasNext:   true,
		remaining: remaining,
		status:    statusCounting,
	}
	return false
}

// formatCountdown renders a countdown as HH:MM:SS. Hours may exceed 24.
func formatCountdown(c prayer.Countdown) string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}
