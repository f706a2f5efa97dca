// Package state provides thread-safe state management for prayerclock.
//
// # Overview
//
// The Store is where the background poller hands schedules to the UI:
//
//	Poller:                       UI (1 Hz tick):
//	provider.Fetch()              store.Snapshot()
//	      ↓                             ↓
//	store.Update(result) ──mutex──→ prayer.ResolveNext(snap.Schedule.Table, now)
//
// # Replacement Rules
//
// A schedule is replaced wholesale, never edited. Live and cached results
// always win. Fallback results increment ConsecutiveFailures and are only
// installed when the store is empty or holds a different day, so a brief
// outage does not swap real timings for the default ones.
//
// # Snapshots
//
// Snapshot returns a value copy. prayer.TimeTable is itself a value type, so
// the UI may hold a snapshot across ticks without locking.
package state
