package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. Surface backs the header and command bar,
// Background everything else.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	// Upcoming prayer row
	SelectionBg   string
	SelectionText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Badge colors keyed by source: live, cache, fallback, offline
	SourceColors map[string]string
}

// Styles are the lipgloss styles the views draw with.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	theme Theme
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),
		Header:      fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Logo:        fg(t.Warning).Bold(true),
		Selected: fg(t.SelectionText).
			Background(lipgloss.Color(t.SelectionBg)).
			Bold(true),
		theme: t,
	}
}

// BadgeStyle returns the badge style for a schedule source.
func (s Styles) BadgeStyle(source string) lipgloss.Style {
	color := s.theme.SourceColors[strings.ToLower(strings.TrimSpace(source))]
	if color == "" {
		color = s.theme.Muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.Background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// WithBackground paints every text style onto bgColor so segments joined
// on a bar leave no transparent gaps. Selected keeps its own background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	for _, st := range []*lipgloss.Style{
		&s.Text, &s.MutedText, &s.FaintText, &s.AccentText,
		&s.SuccessText, &s.WarningText, &s.DangerText, &s.InfoText,
		&s.Header, &s.Logo,
	} {
		*st = st.Background(bg)
	}
	return s
}

var themeOrder = []Theme{nightfoxTheme, kanagawaTheme}

// GetTheme returns a theme by name, Nightfox when unknown.
func GetTheme(name string) Theme {
	for _, t := range themeOrder {
		if t.Name == name {
			return t
		}
	}
	return themeOrder[0]
}

// NextTheme returns the theme after current in the T cycle.
func NextTheme(current string) string {
	for i, t := range themeOrder {
		if t.Name == current {
			return themeOrder[(i+1)%len(themeOrder)].Name
		}
	}
	return themeOrder[0].Name
}

// Nightfox: https://github.com/EdenEast/nightfox.nvim
var nightfoxTheme = Theme{
	Name:          "Nightfox",
	Background:    "#131a24",
	Surface:       "#192330",
	Border:        "#39506d",
	SelectionBg:   "#2b3b51",
	SelectionText: "#dbc074",
	Text:          "#cdcecf",
	Muted:         "#738091",
	Faint:         "#71839b",
	Accent:        "#719cd6",
	Success:       "#81b29a",
	Warning:       "#dbc074",
	Danger:        "#c94f6d",
	Info:          "#63cdcf",
	SourceColors: map[string]string{
		"live": "#81b29a", "cache": "#63cdcf", "fallback": "#f4a261", "offline": "#c94f6d",
	},
}

// Kanagawa: https://github.com/rebelot/kanagawa.nvim
var kanagawaTheme = Theme{
	Name:          "Kanagawa",
	Background:    "#16161D",
	Surface:       "#1F1F28",
	Border:        "#54546D",
	SelectionBg:   "#2D4F67",
	SelectionText: "#E6C384",
	Text:          "#DCD7BA",
	Muted:         "#C8C093",
	Faint:         "#727169",
	Accent:        "#7E9CD8",
	Success:       "#98BB6C",
	Warning:       "#E6C384",
	Danger:        "#E46876",
	Info:          "#7FB4CA",
	SourceColors: map[string]string{
		"live": "#98BB6C", "cache": "#7FB4CA", "fallback": "#FFA066", "offline": "#E46876",
	},
}
