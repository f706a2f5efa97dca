package prayer

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTime marks a time string that is not a valid HH:MM.
	ErrMalformedTime = errors.New("malformed time")

	// ErrMissingFajr is returned when resolution needs to roll over to
	// tomorrow but the table has no Fajr entry.
	ErrMissingFajr = errors.New("timetable has no fajr")

	// ErrNegativeDuration is returned when a countdown target is not in the
	// future, which means the resolved prayer is stale.
	ErrNegativeDuration = errors.New("countdown target is not in the future")
)

// MalformedTimeError describes a single rejected time string.
type MalformedTimeError struct {
	Slot   string // provider key, empty when parsing a bare clock
	Value  string
	Reason string
}

func (e *MalformedTimeError) Error() string {
	if e.Slot == "" {
		return fmt.Sprintf("malformed time %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("malformed time for %s %q: %s", e.Slot, e.Value, e.Reason)
}

// Is lets errors.Is match ErrMalformedTime.
func (e *MalformedTimeError) Is(target error) bool {
	return target == ErrMalformedTime
}
