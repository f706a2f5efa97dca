package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/prayerclock/internal/prayer"
)

// renderTimetable renders the five prayers and the countdown line, centered
// in the space left under the header.
func (m Model) renderTimetable(height int) string {
	styles := m.theme.Styles()
	body := lipgloss.JoinVertical(lipgloss.Left, m.timetableRows()...)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 2).
		Width(TableWidth).
		Render(body)

	content := lipgloss.JoinVertical(lipgloss.Center, box, "", m.renderCountdown())
	if m.snapshot.HasSchedule && m.snapshot.Schedule.ParseErr != nil {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "",
			styles.WarningText.Render(truncateMiddle(firstLine(m.snapshot.Schedule.ParseErr), TableWidth)))
	}

	return lipgloss.Place(m.width, max(height, 1), lipgloss.Center, lipgloss.Center, content)
}

// timetableRows returns one rendered line per slot. The upcoming prayer is
// highlighted and those already started today are muted. Slots the provider
// did not deliver show as --:--.
func (m Model) timetableRows() []string {
	styles := m.theme.Styles()
	inner := TableWidth - 6 // border and padding

	head := m.tableLine(m.labels.Prayer, m.labels.Time, inner)
	rows := []string{styles.FaintText.Render(head), ""}

	if !m.snapshot.HasSchedule {
		return append(rows, styles.MutedText.Render(m.labels.Waiting))
	}

	table := m.snapshot.Schedule.Table
	now := m.snapshot.Schedule.Now(m.clock())
	for _, slot := range prayer.Slots() {
		value := "--:--"
		if c, ok := table.Get(slot); ok {
			value = c.String()
		}
		line := m.tableLine(m.labels.SlotName(slot), value, inner)

		switch {
		case m.countdown.hasNext && m.countdown.next.Slot == slot && m.countdown.next.At.YearDay() == now.YearDay():
			rows = append(rows, styles.Selected.Width(inner).Render(line))
		case m.countdown.hasNext && m.countdown.next.Slot == slot:
			// Tomorrow's Fajr: mark it without claiming today's row.
			rows = append(rows, styles.AccentText.Render(line))
		case !table.Has(slot):
			rows = append(rows, styles.FaintText.Render(line))
		case prayer.Passed(table, slot, now):
			rows = append(rows, styles.MutedText.Render(line))
		default:
			rows = append(rows, styles.Text.Render(line))
		}
	}
	return rows
}

// tableLine lays out a name and a value on one line of the given width,
// mirrored for right-to-left labels.
func (m Model) tableLine(name, value string, width int) string {
	left, right := " "+name, value+" "
	if m.labels.RightToLeft() {
		left, right = " "+value, name+" "
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderCountdown renders "Next: <name> in HH:MM:SS" or the status that
// replaces it.
func (m Model) renderCountdown() string {
	styles := m.theme.Styles()
	switch m.countdown.status {
	case statusCounting:
		name := m.labels.SlotName(m.countdown.next.Slot)
		text := fmt.Sprintf("%s %s %s %s",
			m.labels.Next, name, m.labels.In, formatCountdown(m.countdown.remaining))
		return styles.SuccessText.Render(text)
	case statusRefreshRequired:
		return styles.WarningText.Bold(true).Render(m.labels.RefreshRequired)
	case statusNoSchedule:
		return styles.DangerText.Render(m.labels.NoSchedule)
	default:
		return styles.MutedText.Render(m.labels.Waiting)
	}
}
