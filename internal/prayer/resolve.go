package prayer

import "time"

// Resolved is the upcoming prayer and the instant it begins.
type Resolved struct {
	Slot Slot
	At   time.Time
}

// ResolveNext returns the first prayer strictly after now. Candidates are
// built on now's calendar day in now's location; a prayer exactly at now has
// already started and is skipped. When today has nothing left the result is
// tomorrow's Fajr, which fails with ErrMissingFajr if the table lacks Fajr.
func ResolveNext(table TimeTable, now time.Time) (Resolved, error) {
	for _, e := range table.Entries() {
		at := e.Clock.On(now, 0)
		if at.After(now) {
			return Resolved{Slot: e.Slot, At: at}, nil
		}
	}

	fajr, ok := table.Get(Fajr)
	if !ok {
		return Resolved{}, ErrMissingFajr
	}
	return Resolved{Slot: Fajr, At: fajr.On(now, 1)}, nil
}

// Passed reports whether slot's time today is at or before now.
func Passed(table TimeTable, s Slot, now time.Time) bool {
	c, ok := table.Get(s)
	if !ok {
		return false
	}
	return !c.On(now, 0).After(now)
}
