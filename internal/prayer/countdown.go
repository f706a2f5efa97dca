package prayer

import (
	"fmt"
	"time"
)

// Countdown is a non-negative span in whole hours, minutes and seconds.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
}

// CountdownTo returns the time left until target. Sub-second precision is
// dropped. A target at or before now yields ErrNegativeDuration.
func CountdownTo(target, now time.Time) (Countdown, error) {
	if !target.After(now) {
		return Countdown{}, fmt.Errorf("countdown to %s at %s: %w",
			target.Format(time.RFC3339), now.Format(time.RFC3339), ErrNegativeDuration)
	}
	total := int(target.Sub(now) / time.Second)
	return Countdown{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}, nil
}

// Duration converts the countdown back to a time.Duration.
func (c Countdown) Duration() time.Duration {
	return time.Duration(c.Hours)*time.Hour +
		time.Duration(c.Minutes)*time.Minute +
		time.Duration(c.Seconds)*time.Second
}
