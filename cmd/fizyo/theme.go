package main

import "github.com/charmbracelet/lipgloss"

// Theme defines the terminal appearance of the harness.
type Theme struct {
	HighlightColor       lipgloss.Color // Selected action and active tab background
	AccentColor          lipgloss.Color // Titles, borders
	TextColor            lipgloss.Color // Default text color
	HighlightedTextColor lipgloss.Color // Text on highlighted items
	HintColor            lipgloss.Color // Help text, inactive tabs
	ErrorColor           lipgloss.Color // Failed navigation status
}

// defaultTheme uses the app's primary blue and health green.
func defaultTheme() Theme {
	return Theme{
		HighlightColor:       lipgloss.Color("#1976D2"),
		AccentColor:          lipgloss.Color("#00A651"),
		TextColor:            lipgloss.Color("252"),
		HighlightedTextColor: lipgloss.Color("#FFFFFF"),
		HintColor:            lipgloss.Color("241"),
		ErrorColor:           lipgloss.Color("196"),
	}
}

type styles struct {
	Header    lipgloss.Style
	Box       lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Action    lipgloss.Style
	Selected  lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Bar       lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		Header: lipgloss.NewStyle().
			Foreground(t.HintColor),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.AccentColor).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.AccentColor).
			MarginBottom(1),
		Body: lipgloss.NewStyle().
			Foreground(t.TextColor),
		Action: lipgloss.NewStyle().
			Foreground(t.TextColor).
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.HighlightedTextColor).
			Background(t.HighlightColor).
			PaddingLeft(1).
			PaddingRight(1),
		Status: lipgloss.NewStyle().
			Foreground(t.HintColor),
		StatusErr: lipgloss.NewStyle().
			Foreground(t.ErrorColor),
		Tab: lipgloss.NewStyle().
			Foreground(t.HintColor).
			Padding(0, 2),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.HighlightedTextColor).
			Background(t.HighlightColor).
			Padding(0, 2),
		Bar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(t.AccentColor),
	}
}
