package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/prayerclock/internal/prayer"
	"github.com/five82/prayerclock/internal/prefs"
	"github.com/five82/prayerclock/internal/provider"
	"github.com/five82/prayerclock/internal/state"
)

func testDay() time.Time {
	return time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
}

func testSnapshot(t *testing.T, raw map[string]string) state.Snapshot {
	t.Helper()
	table, err := prayer.Parse(testDay(), raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	store := &state.Store{}
	store.Update(provider.Result{
		Schedule: provider.Schedule{
			Table:     table,
			Location:  time.UTC,
			City:      "Cairo",
			Country:   "Egypt",
			Gregorian: "14 Mar 2025",
			Hijri:     "14 Ramaḍān 1446 AH",
		},
		Source:    provider.SourceLive,
		FetchedAt: testDay().Add(time.Hour),
	})
	return store.Snapshot()
}

var fullDay = map[string]string{
	"Fajr":    "04:50",
	"Dhuhr":   "12:05",
	"Asr":     "15:30",
	"Maghrib": "18:02",
	"Isha":    "19:20",
}

type testModel struct {
	Model
	refreshes *int
}

func newTestModel(t *testing.T, now time.Time) testModel {
	t.Helper()
	count := 0
	m := New(Options{
		Refresh:   func() { count++ },
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Now:       func() time.Time { return now },
	})
	m.width, m.height, m.ready = 100, 30, true
	return testModel{Model: m, refreshes: &count}
}

func (tm *testModel) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := tm.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	tm.Model = model
	return cmd
}

func at(hour, minute, second int) time.Time {
	return testDay().Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
}

func TestModel_CountsDownToNextPrayer(t *testing.T) {
	tm := newTestModel(t, at(12, 30, 0))
	tm.send(t, snapshotMsg(testSnapshot(t, fullDay)))

	if tm.countdown.status != statusCounting {
		t.Fatalf("status = %v, want counting", tm.countdown.status)
	}
	if tm.countdown.next.Slot != prayer.Asr {
		t.Fatalf("next = %v, want Asr", tm.countdown.next.Slot)
	}
	if got := tm.renderCountdown(); !strings.Contains(got, "Next: Asr in 03:00:00") {
		t.Fatalf("renderCountdown = %q, want it to contain %q", got, "Next: Asr in 03:00:00")
	}

	tm.send(t, tickMsg(at(12, 30, 1)))
	if got := formatCountdown(tm.countdown.remaining); got != "02:59:59" {
		t.Fatalf("remaining after tick = %q, want %q", got, "02:59:59")
	}
	if *tm.refreshes != 0 {
		t.Fatalf("refreshes = %d, want 0", *tm.refreshes)
	}
}

func TestModel_PrayerStartMovesToNextPrayer(t *testing.T) {
	tm := newTestModel(t, at(15, 29, 59))
	tm.send(t, snapshotMsg(testSnapshot(t, fullDay)))
	if tm.countdown.next.Slot != prayer.Asr {
		t.Fatalf("next = %v, want Asr", tm.countdown.next.Slot)
	}

	tm.send(t, tickMsg(at(15, 30, 0)))
	if tm.countdown.status != statusCounting || tm.countdown.next.Slot != prayer.Maghrib {
		t.Fatalf("at Asr: status %v next %v, want counting Maghrib", tm.countdown.status, tm.countdown.next.Slot)
	}
	if got := tm.renderCountdown(); !strings.Contains(got, "Next: Maghrib in 02:32:00") {
		t.Fatalf("renderCountdown = %q, want %q", got, "Next: Maghrib in 02:32:00")
	}
	if *tm.refreshes != 0 {
		t.Fatalf("refreshes = %d, want 0", *tm.refreshes)
	}
}

func TestModel_TableFromYesterdayRequestsRefresh(t *testing.T) {
	tm := newTestModel(t, at(24, 0, 5))
	tm.send(t, snapshotMsg(testSnapshot(t, fullDay)))

	if tm.countdown.status != statusRefreshRequired {
		t.Fatalf("status = %v, want refresh required", tm.countdown.status)
	}
	if *tm.refreshes != 1 {
		t.Fatalf("refreshes = %d, want 1", *tm.refreshes)
	}
	if got := tm.renderCountdown(); !strings.Contains(got, "Refresh required") {
		t.Fatalf("renderCountdown = %q, want Refresh required", got)
	}
}

func TestModel_AfterIshaRollsOverToFajr(t *testing.T) {
	tm := newTestModel(t, at(22, 0, 0))
	tm.send(t, snapshotMsg(testSnapshot(t, fullDay)))

	if tm.countdown.next.Slot != prayer.Fajr {
		t.Fatalf("next = %v, want Fajr", tm.countdown.next.Slot)
	}
	if got := formatCountdown(tm.countdown.remaining); got != "06:50:00" {
		t.Fatalf("remaining = %q, want %q", got, "06:50:00")
	}
}

func TestModel_MissingFajrAfterIsha(t *testing.T) {
	raw := map[string]string{"Dhuhr": "12:05", "Isha": "19:20"}
	tm := newTestModel(t, at(21, 0, 0))
	tm.send(t, snapshotMsg(testSnapshot(t, raw)))

	if tm.countdown.status != statusNoSchedule {
		t.Fatalf("status = %v, want no schedule", tm.countdown.status)
	}
	if *tm.refreshes != 1 {
		t.Fatalf("refreshes = %d, want 1", *tm.refreshes)
	}
	if got := tm.renderCountdown(); !strings.Contains(got, "No usable schedule") {
		t.Fatalf("renderCountdown = %q, want No usable schedule", got)
	}
}

func TestModel_WaitsWithoutSchedule(t *testing.T) {
	tm := newTestModel(t, at(9, 0, 0))
	tm.send(t, tickMsg(at(9, 0, 1)))

	if tm.countdown.status != statusWaiting {
		t.Fatalf("status = %v, want waiting", tm.countdown.status)
	}
	if *tm.refreshes != 0 {
		t.Fatalf("refreshes = %d, want 0", *tm.refreshes)
	}
	if view := tm.View(); !strings.Contains(view, "Fetching timings") {
		t.Fatalf("View() does not mention fetching: %q", view)
	}
}

func TestModel_NewScheduleDropsCachedPrayer(t *testing.T) {
	tm := newTestModel(t, at(12, 30, 0))
	tm.send(t, snapshotMsg(testSnapshot(t, fullDay)))

	later := map[string]string{
		"Fajr": "04:50", "Dhuhr": "12:05", "Asr": "16:00", "Maghrib": "18:02", "Isha": "19:20",
	}
	snap := testSnapshot(t, later)
	snap.LastUpdated = snap.LastUpdated.Add(time.Minute)
	tm.send(t, snapshotMsg(snap))

	want := at(16, 0, 0)
	if !tm.countdown.next.At.Equal(want) {
		t.Fatalf("next at = %v, want %v", tm.countdown.next.At, want)
	}
}

func TestModel_Keys(t *testing.T) {
	tm := newTestModel(t, at(12, 0, 0))

	tm.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if *tm.refreshes != 1 {
		t.Fatalf("refreshes after r = %d, want 1", *tm.refreshes)
	}

	tm.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("T")})
	if tm.theme.Name != "Kanagawa" {
		t.Fatalf("theme after T = %q, want Kanagawa", tm.theme.Name)
	}

	tm.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	if tm.labels.code != "ar" {
		t.Fatalf("language after L = %q, want ar", tm.labels.code)
	}

	saved := prefs.Load(tm.prefsPath)
	if saved.Theme != "Kanagawa" || saved.Language != "ar" {
		t.Fatalf("saved prefs = %+v, want Kanagawa/ar", saved)
	}

	tm.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if tm.currentView != ViewLogs {
		t.Fatalf("view after l = %v, want logs", tm.currentView)
	}
	tm.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	if tm.currentView != ViewTimetable {
		t.Fatalf("view after esc = %v, want timetable", tm.currentView)
	}

	tm.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !tm.showHelp {
		t.Fatal("help not shown after ?")
	}
	tm.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if tm.showHelp {
		t.Fatal("help still shown after a key press")
	}

	cmd := tm.send(t, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit")
	}
}

func TestModel_ArabicLabels(t *testing.T) {
	tm := newTestModel(t, at(12, 30, 0))
	tm.labels = labelsFor("ar")
	tm.send(t, snapshotMsg(testSnapshot(t, fullDay)))

	if got := tm.renderCountdown(); !strings.Contains(got, "العصر") {
		t.Fatalf("renderCountdown = %q, want Arabic Asr", got)
	}
}

func TestModel_ViewShowsTable(t *testing.T) {
	tm := newTestModel(t, at(12, 30, 0))
	tm.send(t, snapshotMsg(testSnapshot(t, fullDay)))

	view := tm.View()
	for _, want := range []string{"Cairo, Egypt", "LIVE", "Fajr", "04:50", "Isha", "19:20"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q", want)
		}
	}
}
