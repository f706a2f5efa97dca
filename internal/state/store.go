package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/prayerclock/internal/provider"
)

// Snapshot represents the latest schedule available to the UI.
type Snapshot struct {
	Schedule            provider.Schedule
	HasSchedule         bool
	Source              provider.Source
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // fetches in a row that fell back
}

// IsOffline returns true when the API has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The poller writes,
// the UI reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a fetch result. Live and cached results replace the
// schedule. A fallback result counts as a failure and only replaces the
// schedule when there is none yet or the current one is for another day, so
// a good table is never overwritten by default times.
func (s *Store) Update(res provider.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := res.FetchedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	s.snapshot.LastUpdated = updated

	if res.Source == provider.SourceFallback {
		s.snapshot.LastError = res.Err
		s.snapshot.ConsecutiveFailures++
		fresh := res.Schedule.Table.Date()
		if !s.snapshot.HasSchedule || !s.snapshot.Schedule.Table.IsFor(fresh) {
			s.snapshot.Schedule = res.Schedule
			s.snapshot.HasSchedule = true
			s.snapshot.Source = res.Source
		}
		return
	}

	s.snapshot.Schedule = res.Schedule
	s.snapshot.HasSchedule = true
	s.snapshot.Source = res.Source
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
