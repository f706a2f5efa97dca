package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/prayerclock/internal/prefs"
	"github.com/five82/prayerclock/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewTimetable View = iota
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Refresh   func() // asks the poller for a refresh; must not block
	Tick      time.Duration
	ThemeName string
	Language  string
	PrefsPath string
	LogPath   string
	Logger    zerolog.Logger
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	refresh   func()
	prefsPath string
	logPath   string
	tick      time.Duration
	now       func() time.Time
	logger    zerolog.Logger

	// UI state
	theme       Theme
	labels      labels
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot  state.Snapshot
	lastTick  time.Time
	countdown countdownState

	// Log state
	logViewport viewport.Model
	logState    logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	refresh := opts.Refresh
	if refresh == nil {
		refresh = func() {}
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		refresh:     refresh,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		tick:        tick,
		now:         now,
		logger:      opts.Logger.With().Str("component", "ui").Logger(),
		theme:       GetTheme(opts.ThemeName),
		labels:      labelsFor(opts.Language),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewTimetable,
		countdown:   countdownState{status: statusWaiting},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.tick),
		waitForDone(m.ctx),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case logsMsg:
		m.handleLogs(msg)
		return m, nil

	case doneMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.logger.Debug().Msg("refresh requested from keyboard")
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLanguage):
		m.labels = labelsFor(otherLanguage(m.labels.code))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.currentView = ViewLogs
		m.logState.follow = true
		return m, loadLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewTimetable
		return m, nil
	}

	if m.currentView == ViewLogs {
		return m.handleLogsKey(msg)
	}
	return m, nil
}

// handleTick advances the countdown and schedules the next tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.lastTick = t
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	} else {
		m.advanceCountdown()
	}

	if m.currentView == ViewLogs && m.logState.follow {
		if cmd := loadLogsCmd(m.logPath); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, tickCmd(m.tick))
	return m, tea.Batch(cmds...)
}

// applySnapshot installs a snapshot and recomputes the countdown from it.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.advanceCountdown()
}

// advanceCountdown recomputes the countdown and forwards a refresh request
// when the table is stale or cannot roll over.
func (m *Model) advanceCountdown() {
	prev := m.countdown.status
	if !m.countdown.advance(m.snapshot, m.clock()) {
		return
	}
	if m.countdown.status != prev {
		m.logger.Info().Err(m.countdown.err).Msg("countdown unusable, requesting refresh")
	}
	m.refresh()
}

// clock returns the time of the latest tick, or now before the first one.
func (m Model) clock() time.Time {
	if m.lastTick.IsZero() {
		return m.now()
	}
	return m.lastTick
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Language: m.labels.code}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs failed")
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLogs:
		return m.renderLogs()
	default:
		return m.renderTimetable(m.bodyHeight())
	}
}

// bodyHeight is the height left under the two header lines.
func (m Model) bodyHeight() int {
	return max(m.height-2, 1)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type doneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// waitForDone quits the program when the context is cancelled.
func waitForDone(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return doneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
