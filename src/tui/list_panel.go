package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderListPanel renders the left panel with the diagnostics list
func (m MainModel) renderListPanel(width, height int) string {
	listPanel := m.styles.PanelStyle(width, height, !m.detailFocused).
		Render(m.listView.Render())

	delegate := m.listView.Delegate()
	locWidth, _ := delegate.columns(width - 2)
	headerText := fmt.Sprintf("%*s │ %s │ Message",
		delegate.RankWidth, "#", TruncateAndPad("Location", locWidth, false))

	headerRow := lipgloss.NewStyle().
		Foreground(m.styles.PrimaryBlue).
		Bold(true).
		Padding(0, 1).
		Render(Truncate(headerText, width-2, true))

	return lipgloss.JoinVertical(lipgloss.Left, headerRow, listPanel)
}
