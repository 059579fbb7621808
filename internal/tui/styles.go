package tui

import (
	"github.com/charmbracelet/lipgloss"
)

type AppTheme struct {
	Accent string
	Text   string
	Subtle string
}

// TerminalTheme sticks to the basic ANSI palette so the wizard looks the
// same on any terminal: green accent on the default background.
func TerminalTheme() AppTheme {
	return AppTheme{
		Accent: "2",
		Text:   "7",
		Subtle: "8",
	}
}

// Style selects how a run of text is drawn inside a pane.
type Style int

const (
	StyleDefault Style = iota
	StyleAccent
	StyleReversed
)

type Styles struct {
	Default  lipgloss.Style
	Accent   lipgloss.Style
	Reversed lipgloss.Style
	Border   lipgloss.Style
	Caption  lipgloss.Style
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		Default: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)),

		Reversed: lipgloss.NewStyle().
			Reverse(true),

		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Caption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
	}
}

func (s Styles) Render(style Style, text string) string {
	switch style {
	case StyleAccent:
		return s.Accent.Render(text)
	case StyleReversed:
		return s.Reversed.Render(text)
	default:
		return s.Default.Render(text)
	}
}
