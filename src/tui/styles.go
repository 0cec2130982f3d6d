package tui

import "github.com/charmbracelet/lipgloss"

// StyleConfig holds the colors of the browser.
type StyleConfig struct {
	PrimaryBlue    lipgloss.Color
	AccentBlue     lipgloss.Color
	DarkBackground lipgloss.Color
	TextPrimary    lipgloss.Color
	TextSecondary  lipgloss.Color
	BorderColor    lipgloss.Color
	SelectedColor  lipgloss.Color

	// Severity colors
	ErrorColor lipgloss.Color
	FatalColor lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		PrimaryBlue:    lipgloss.Color("#8AB4F8"),
		AccentBlue:     lipgloss.Color("#4285F4"),
		DarkBackground: lipgloss.Color("#1E1E1E"),
		TextPrimary:    lipgloss.Color("#E8EAED"),
		TextSecondary:  lipgloss.Color("#9AA0A6"),
		BorderColor:    lipgloss.Color("#5F6368"),
		SelectedColor:  lipgloss.Color("#303134"),
		ErrorColor:     lipgloss.Color("#EA4335"),
		FatalColor:     lipgloss.Color("#A142F4"),
	}
}

// SeverityColor picks the color for a diagnostic severity.
func (s *StyleConfig) SeverityColor(severity string) lipgloss.Color {
	if severity == "fatal error" {
		return s.FatalColor
	}
	return s.ErrorColor
}

// HelpStyle returns a help text lipgloss style using this config
func (s *StyleConfig) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.TextSecondary).
		Padding(0, 1)
}

// PanelStyle returns a bordered panel style of the given outer size.
func (s *StyleConfig) PanelStyle(width, height int, focused bool) lipgloss.Style {
	border := s.BorderColor
	if focused {
		border = s.AccentBlue
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(width-2, 0)).
		Height(max(height, 0))
}
