// Package prayer holds the pure scheduling core of prayerclock.
//
// # Overview
//
// A TimeTable carries one day's clocks for the five prayers. ResolveNext
// picks the next prayer relative to a given instant and CountdownTo measures
// the time left until it. Nothing here performs I/O or keeps state between
// calls, so the UI can call both functions on every tick.
//
// # Slots
//
// Slot is a closed enumeration. Iteration always follows the canonical order
// Fajr, Dhuhr, Asr, Maghrib, Isha, regardless of how the provider ordered its
// JSON keys:
//
//	for _, s := range prayer.Slots() {
//		fmt.Println(s) // Fajr, Dhuhr, ...
//	}
//
// # Parsing
//
// Provider strings look like "05:12" or "05:12 (EET)". Only the leading
// token is read. A malformed entry drops that slot alone:
//
//	table, err := prayer.Parse(day, timings)
//	if errors.Is(err, prayer.ErrMalformedTime) {
//		// table still holds every valid slot
//	}
//
// # Resolution
//
// A prayer whose time equals now is not "next"; the countdown moves on to the
// following slot at the exact second the prayer begins. After the last slot of
// the day, resolution rolls over to tomorrow's Fajr.
//
// # Errors
//
//   - ErrMalformedTime: per slot, non-fatal
//   - ErrMissingFajr: no rollover possible, the caller should re-fetch
//   - ErrNegativeDuration: the resolved target is stale, the caller should refresh
package prayer
