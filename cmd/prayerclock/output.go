package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/five82/prayerclock/internal/prayer"
	"github.com/five82/prayerclock/internal/provider"
)

// writeToday prints the schedule as a two-column table with "<" after the
// next prayer. Today's Fajr carries the marker when the next prayer is
// tomorrow's.
func writeToday(w io.Writer, s provider.Schedule, now time.Time) error {
	now = s.Now(now)
	next, nextErr := prayer.ResolveNext(s.Table, now)

	if header := scheduleHeader(s); header != "" {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, slot := range prayer.Slots() {
		value := "--:--"
		if c, ok := s.Table.Get(slot); ok {
			value = c.String()
		}
		marker := ""
		if nextErr == nil && next.Slot == slot {
			marker = "<"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", slot, value, marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if nextErr != nil {
		return fmt.Errorf("resolve next prayer: %w", nextErr)
	}
	return nil
}

// writeNext prints "<slot> HH:MM HH:MM:SS": the next prayer, when it starts
// and how long until then.
func writeNext(w io.Writer, s provider.Schedule, now time.Time) error {
	now = s.Now(now)
	next, err := prayer.ResolveNext(s.Table, now)
	if err != nil {
		return fmt.Errorf("resolve next prayer: %w", err)
	}
	left, err := prayer.CountdownTo(next.At, now)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s %02d:%02d:%02d\n",
		next.Slot, next.At.Format("15:04"), left.Hours, left.Minutes, left.Seconds)
	return err
}

// writeSourceWarning notes on stderr when the timings are not live.
func writeSourceWarning(w io.Writer, res provider.Result) {
	switch res.Source {
	case provider.SourceFallback:
		fmt.Fprintf(w, "warning: using fallback timings: %v\n", res.Err)
	case provider.SourceCache:
		fmt.Fprintln(w, "note: timings served from cache")
	}
	if res.Schedule.ParseErr != nil {
		fmt.Fprintf(w, "warning: %v\n", res.Schedule.ParseErr)
	}
}

func scheduleHeader(s provider.Schedule) string {
	var parts []string
	place := strings.Trim(strings.TrimSpace(s.City)+", "+strings.TrimSpace(s.Country), ", ")
	if place != "" {
		parts = append(parts, place)
	}
	if s.Gregorian != "" {
		parts = append(parts, s.Gregorian)
	}
	if s.Hijri != "" {
		parts = append(parts, s.Hijri)
	}
	return strings.Join(parts, "  ")
}
