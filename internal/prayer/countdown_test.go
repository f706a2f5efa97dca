package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountdownTo(t *testing.T) {
	now := at(10, 0, 0)

	got, err := CountdownTo(now.Add(2*time.Hour+3*time.Minute+4*time.Second), now)
	require.NoError(t, err)
	require.Equal(t, Countdown{Hours: 2, Minutes: 3, Seconds: 4}, got)
	require.Equal(t, 2*time.Hour+3*time.Minute+4*time.Second, got.Duration())
}

func TestCountdownTo_TruncatesSubSecond(t *testing.T) {
	now := at(10, 0, 0).Add(250 * time.Millisecond)

	got, err := CountdownTo(at(10, 0, 5), now)
	require.NoError(t, err)
	require.Equal(t, Countdown{Seconds: 4}, got)

	got, err = CountdownTo(now.Add(500*time.Millisecond), now)
	require.NoError(t, err)
	require.Equal(t, Countdown{}, got)
}

func TestCountdownTo_LongerThanADay(t *testing.T) {
	now := at(10, 0, 0)
	got, err := CountdownTo(now.Add(25*time.Hour+time.Second), now)
	require.NoError(t, err)
	require.Equal(t, Countdown{Hours: 25, Seconds: 1}, got)
}

func TestCountdownTo_NotInFuture(t *testing.T) {
	now := at(10, 0, 0)

	_, err := CountdownTo(now, now)
	require.ErrorIs(t, err, ErrNegativeDuration)

	_, err = CountdownTo(now.Add(-time.Minute), now)
	require.ErrorIs(t, err, ErrNegativeDuration)
}

func TestResolveThenCountdown(t *testing.T) {
	table := fullTable(t)
	now := at(20, 0, 0)

	next, err := ResolveNext(table, now)
	require.NoError(t, err)

	left, err := CountdownTo(next.At, now)
	require.NoError(t, err)
	require.Equal(t, Countdown{Hours: 9}, left)
}
