package prayer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// String formats the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the instant at this clock on the calendar day of ref, in ref's
// location, with seconds zeroed. dayOffset shifts the calendar day.
func (c Clock) On(ref time.Time, dayOffset int) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d+dayOffset, c.Hour, c.Minute, 0, 0, ref.Location())
}

// ParseClock parses a provider time string. Only the first whitespace
// separated token is read, so "05:30 (EET)" yields 05:30.
func ParseClock(raw string) (Clock, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Clock{}, &MalformedTimeError{Value: raw, Reason: "empty"}
	}
	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return Clock{}, &MalformedTimeError{Value: raw, Reason: "want HH:MM"}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, &MalformedTimeError{Value: raw, Reason: "hour is not a number"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, &MalformedTimeError{Value: raw, Reason: "minute is not a number"}
	}
	if hour < 0 || hour > 23 {
		return Clock{}, &MalformedTimeError{Value: raw, Reason: "hour out of range"}
	}
	if minute < 0 || minute > 59 {
		return Clock{}, &MalformedTimeError{Value: raw, Reason: "minute out of range"}
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Entry pairs a slot with its clock.
type Entry struct {
	Slot  Slot
	Clock Clock
}

// TimeTable holds one day's prayer clocks. It is immutable once built; a new
// day's data produces a new TimeTable.
type TimeTable struct {
	date   time.Time
	clocks [len(slotOrder)]Clock
	set    [len(slotOrder)]bool
}

// NewTimeTable builds a table for the calendar day of date from already
// validated entries. Later entries for the same slot win.
func NewTimeTable(date time.Time, entries ...Entry) (TimeTable, error) {
	t := TimeTable{date: truncateDay(date)}
	for _, e := range entries {
		if !e.Slot.Valid() {
			return TimeTable{}, fmt.Errorf("unknown slot %d", int(e.Slot))
		}
		if e.Clock.Hour < 0 || e.Clock.Hour > 23 || e.Clock.Minute < 0 || e.Clock.Minute > 59 {
			return TimeTable{}, &MalformedTimeError{Slot: e.Slot.String(), Value: e.Clock.String(), Reason: "out of range"}
		}
		t.clocks[e.Slot] = e.Clock
		t.set[e.Slot] = true
	}
	return t, nil
}

// Parse builds a TimeTable from provider timings keyed by slot name.
// Unknown keys are ignored. A malformed value drops only that slot: the
// returned table still holds every valid slot and the error joins one
// *MalformedTimeError per rejected slot.
func Parse(date time.Time, raw map[string]string) (TimeTable, error) {
	t := TimeTable{date: truncateDay(date)}
	var errs []error
	for _, s := range slotOrder {
		value, ok := raw[s.String()]
		if !ok {
			continue
		}
		c, err := ParseClock(value)
		if err != nil {
			var mt *MalformedTimeError
			if errors.As(err, &mt) {
				mt.Slot = s.String()
			}
			errs = append(errs, err)
			continue
		}
		t.clocks[s] = c
		t.set[s] = true
	}
	return t, errors.Join(errs...)
}

// Date returns the calendar day the table applies to, at midnight.
func (t TimeTable) Date() time.Time {
	return t.date
}

// IsFor reports whether the table's calendar day matches now's.
func (t TimeTable) IsFor(now time.Time) bool {
	y1, m1, d1 := t.date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Get returns the clock for slot.
func (t TimeTable) Get(s Slot) (Clock, bool) {
	if !s.Valid() || !t.set[s] {
		return Clock{}, false
	}
	return t.clocks[s], true
}

// Has reports whether the slot is present.
func (t TimeTable) Has(s Slot) bool {
	_, ok := t.Get(s)
	return ok
}

// Len returns the number of slots present.
func (t TimeTable) Len() int {
	n := 0
	for _, ok := range t.set {
		if ok {
			n++
		}
	}
	return n
}

// Entries returns the present slots in canonical order.
func (t TimeTable) Entries() []Entry {
	out := make([]Entry, 0, len(slotOrder))
	for _, s := range slotOrder {
		if t.set[s] {
			out = append(out, Entry{Slot: s, Clock: t.clocks[s]})
		}
	}
	return out
}

// Raw renders the table back into provider form.
func (t TimeTable) Raw() map[string]string {
	out := make(map[string]string, t.Len())
	for _, e := range t.Entries() {
		out[e.Slot.String()] = e.Clock.String()
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
