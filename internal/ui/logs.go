package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/prayerclock/internal/logtail"
)

// logState holds the log view's data between refreshes.
type logState struct {
	entries []logtail.Entry
	err     error
	follow  bool // keep the viewport pinned to the newest line
}

// Log messages

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

// loadLogsCmd reads the tail of the log file off the update loop.
func loadLogsCmd(path string) tea.Cmd {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, LogTailLines)
		return logsMsg{entries: entries, err: err}
	}
}

// initLogViewport sizes the log viewport to the space under the header.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.width, m.bodyHeight())
	m.logState.follow = true
}

// handleLogs stores freshly read entries and re-renders the viewport.
func (m *Model) handleLogs(msg logsMsg) {
	m.logState.entries = msg.entries
	m.logState.err = msg.err
	m.updateLogViewport()
}

// updateLogViewport re-renders log lines into the viewport.
func (m *Model) updateLogViewport() {
	m.logViewport.Width = m.width
	m.logViewport.Height = m.bodyHeight()
	m.logViewport.SetContent(m.formatLogs())
	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

// handleLogsKey scrolls the log view. Scrolling up stops following; reaching
// the bottom resumes it.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	default:
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		m.logState.follow = m.logViewport.AtBottom()
		return m, cmd
	}
	m.logState.follow = m.logViewport.AtBottom()
	return m, nil
}

func (m Model) formatLogs() string {
	styles := m.theme.Styles()
	if m.logState.err != nil {
		return styles.DangerText.Render("read log: " + m.logState.err.Error())
	}
	if len(m.logState.entries) == 0 {
		return styles.MutedText.Render("No log entries in " + m.logPath)
	}

	lines := make([]string, 0, len(m.logState.entries))
	for _, e := range m.logState.entries {
		lines = append(lines, m.formatLogEntry(e))
	}
	return strings.Join(lines, "\n")
}

// formatLogEntry renders one entry as "15:04:05 LVL [component] message error=...".
func (m Model) formatLogEntry(e logtail.Entry) string {
	styles := m.theme.Styles()
	if e.Level == "" && e.Time.IsZero() {
		return styles.Text.Render(e.Message)
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
		b.WriteString(" ")
	}
	b.WriteString(levelStyle(styles, e.Level).Render(fmt.Sprintf("%-3s", levelAbbrev(e.Level))))
	b.WriteString(" ")
	if e.Component != "" {
		b.WriteString(styles.AccentText.Render("[" + e.Component + "]"))
		b.WriteString(" ")
	}
	b.WriteString(styles.Text.Render(e.Message))
	if e.Error != "" {
		b.WriteString(" ")
		b.WriteString(styles.DangerText.Render("error=" + e.Error))
	}
	return b.String()
}

func levelAbbrev(level string) string {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return "DBG"
	case "info":
		return "INF"
	case "warn", "warning":
		return "WRN"
	case "error", "fatal", "panic":
		return "ERR"
	default:
		return strings.ToUpper(level)
	}
}

func levelStyle(styles Styles, level string) lipgloss.Style {
	switch strings.ToLower(level) {
	case "warn", "warning":
		return styles.WarningText
	case "error", "fatal", "panic":
		return styles.DangerText
	case "debug", "trace":
		return styles.FaintText
	default:
		return styles.InfoText
	}
}

func (m Model) renderLogs() string {
	return m.logViewport.View()
}
