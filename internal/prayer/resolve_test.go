package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fullTable(t *testing.T) TimeTable {
	t.Helper()
	table, err := Parse(testDay, map[string]string{
		"Fajr":    "05:00",
		"Dhuhr":   "12:00",
		"Asr":     "15:30",
		"Maghrib": "18:00",
		"Isha":    "19:30",
	})
	require.NoError(t, err)
	return table
}

func at(hour, minute, second int) time.Time {
	return time.Date(2025, time.March, 14, hour, minute, second, 0, time.UTC)
}

func TestResolveNext(t *testing.T) {
	table := fullTable(t)

	cases := []struct {
		name     string
		now      time.Time
		wantSlot Slot
		wantAt   time.Time
	}{
		{"before fajr", at(3, 0, 0), Fajr, at(5, 0, 0)},
		{"morning", at(10, 0, 0), Dhuhr, at(12, 0, 0)},
		{"exactly dhuhr", at(12, 0, 0), Asr, at(15, 30, 0)},
		{"one second before dhuhr", at(11, 59, 59), Dhuhr, at(12, 0, 0)},
		{"sub-second past dhuhr", at(12, 0, 0).Add(time.Millisecond), Asr, at(15, 30, 0)},
		{"exactly isha", at(19, 30, 0), Fajr, time.Date(2025, time.March, 15, 5, 0, 0, 0, time.UTC)},
		{"after isha", at(20, 0, 0), Fajr, time.Date(2025, time.March, 15, 5, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveNext(table, tc.now)
			require.NoError(t, err)
			require.Equal(t, tc.wantSlot, got.Slot)
			require.True(t, tc.wantAt.Equal(got.At), "At = %v, want %v", got.At, tc.wantAt)
		})
	}
}

func TestResolveNext_OnlyFajrRollsOver(t *testing.T) {
	table, err := Parse(testDay, map[string]string{"Fajr": "05:00"})
	require.NoError(t, err)

	got, err := ResolveNext(table, at(6, 0, 0))
	require.NoError(t, err)
	require.Equal(t, Fajr, got.Slot)
	require.Equal(t, time.Date(2025, time.March, 15, 5, 0, 0, 0, time.UTC), got.At)
}

func TestResolveNext_MissingFajr(t *testing.T) {
	table, err := Parse(testDay, map[string]string{"Dhuhr": "12:00", "Asr": "15:30"})
	require.NoError(t, err)

	got, err := ResolveNext(table, at(10, 0, 0))
	require.NoError(t, err)
	require.Equal(t, Dhuhr, got.Slot)

	_, err = ResolveNext(table, at(16, 0, 0))
	require.ErrorIs(t, err, ErrMissingFajr)

	_, err = ResolveNext(TimeTable{}, at(16, 0, 0))
	require.ErrorIs(t, err, ErrMissingFajr)
}

func TestResolveNext_UsesNowsLocation(t *testing.T) {
	cairo := time.FixedZone("EET", 2*60*60)
	table := fullTable(t)
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, cairo)

	got, err := ResolveNext(table, now)
	require.NoError(t, err)
	require.Equal(t, Dhuhr, got.Slot)
	require.Equal(t, time.Date(2025, time.March, 14, 12, 0, 0, 0, cairo), got.At)
	require.Equal(t, cairo, got.At.Location())
}

func TestResolveNext_RolloverAcrossMonthEnd(t *testing.T) {
	table := fullTable(t)
	now := time.Date(2025, time.March, 31, 21, 0, 0, 0, time.UTC)

	got, err := ResolveNext(table, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.April, 1, 5, 0, 0, 0, time.UTC), got.At)
}

func TestResolveNext_Idempotent(t *testing.T) {
	table := fullTable(t)
	now := at(13, 14, 15)

	first, err1 := ResolveNext(table, now)
	second, err2 := ResolveNext(table, now)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, first, second)
}

func TestPassed(t *testing.T) {
	table := fullTable(t)
	now := at(12, 0, 0)

	require.True(t, Passed(table, Fajr, now))
	require.True(t, Passed(table, Dhuhr, now))
	require.False(t, Passed(table, Asr, now))

	partial, err := Parse(testDay, map[string]string{"Fajr": "05:00"})
	require.NoError(t, err)
	require.False(t, Passed(partial, Isha, now))
}
