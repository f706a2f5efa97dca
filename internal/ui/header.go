package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logoText = "prayerclock"

// renderHeader renders the status bar: logo, place, source badge and dates.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render(logoText, styles.Logo)}

	if !m.snapshot.HasSchedule {
		parts = append(parts, bg.Render(m.labels.Waiting, styles.WarningText.Bold(true)))
		return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
	}

	sched := m.snapshot.Schedule
	place := strings.TrimSpace(strings.Join(nonEmpty(sched.City, sched.Country), ", "))
	if place != "" {
		parts = append(parts, bg.Render(place, styles.Text.Bold(true)))
	}

	parts = append(parts, m.renderSourceBadge())

	if m.width >= LayoutCompactWidth {
		if sched.Gregorian != "" {
			parts = append(parts, bg.Render(sched.Gregorian, styles.MutedText))
		}
		if hijri := m.labels.HijriDate(sched); hijri != "" {
			parts = append(parts, bg.Render(hijri, styles.AccentText))
		}
	}

	if !m.snapshot.LastUpdated.IsZero() {
		ago := humanizeDuration(m.clock().Sub(m.snapshot.LastUpdated))
		parts = append(parts,
			bg.Render("updated", styles.FaintText)+bg.Space()+bg.Render(ago, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderSourceBadge shows where the timings came from. OFFLINE wins once
// fetches keep failing, whatever schedule is on screen.
func (m Model) renderSourceBadge() string {
	styles := m.theme.Styles()
	if m.snapshot.IsOffline() {
		return styles.BadgeStyle("offline").Render(m.labels.Offline)
	}
	src := m.snapshot.Source
	return styles.BadgeStyle(src.String()).Render(m.labels.SourceName(src))
}

// renderCommandBar renders the key hints under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"esc", "Timetable"},
			{"r", "Refresh"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"r", "Refresh"},
			{"l", "Logs"},
			{"T", "Theme"},
			{"L", "Language"},
			{"?", "More"},
			{"q", "Quit"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.WarningText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	line := strings.Join(segments, sep)
	if m.snapshot.LastError != nil && m.width >= LayoutCompactWidth {
		msg := truncateMiddle(firstLine(m.snapshot.LastError), max(m.width-lipgloss.Width(line)-6, 10))
		line += sep + bg.Render(msg, styles.DangerText)
	}

	return styles.Header.Width(m.width).Render(line)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}
