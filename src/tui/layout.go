package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// panelDimensions holds calculated layout dimensions
type panelDimensions struct {
	availableHeight int
	leftPanelWidth  int
	rightPanelWidth int
}

// calculateDimensions computes panel sizes from the terminal size.
func (m MainModel) calculateDimensions() panelDimensions {
	headerHeight := lipgloss.Height(m.header.Render(m.width))
	// header + help line + panel title row + panel borders
	availableHeight := m.height - headerHeight - 1 - 1 - 2

	// List 45% | Detail 55%
	leftPanelWidth := m.width * 45 / 100
	return panelDimensions{
		availableHeight: max(availableHeight, 1),
		leftPanelWidth:  leftPanelWidth,
		rightPanelWidth: m.width - leftPanelWidth,
	}
}

// View renders the complete TUI layout
func (m MainModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.header.Render(m.width)
	body := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).PaddingTop(2)

	switch {
	case m.status == StatusLoading:
		return lipgloss.JoinVertical(lipgloss.Left, header, body.Render(m.progress.View()))
	case m.status == StatusFailed:
		msg := lipgloss.NewStyle().Foreground(m.styles.ErrorColor).Render(Wrap(m.err.Error(), m.width-4))
		return lipgloss.JoinVertical(lipgloss.Left, header, body.Render(msg))
	case len(m.items) == 0:
		return lipgloss.JoinVertical(lipgloss.Left, header, body.Render("No errors found."), m.renderHelpText())
	}

	dims := m.calculateDimensions()
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderListPanel(dims.leftPanelWidth, dims.availableHeight),
		m.renderDetailPanel(dims.rightPanelWidth, dims.availableHeight))

	return lipgloss.JoinVertical(lipgloss.Left, header, mainContent, m.renderHelpText())
}

// renderHelpText renders context-aware help text at the bottom
func (m MainModel) renderHelpText() string {
	keyStyle := lipgloss.NewStyle().Foreground(m.styles.PrimaryBlue).Bold(true)
	sep := lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Render("•")

	var helpText string
	switch {
	case m.searchMode:
		helpText = fmt.Sprintf("%s: Apply %s %s: Clear",
			keyStyle.Render("Enter"), sep, keyStyle.Render("Esc"))
	case m.detailFocused:
		helpText = fmt.Sprintf("%s: Scroll %s %s: Back %s %s: Quit",
			keyStyle.Render("j/k"), sep, keyStyle.Render("Esc"), sep, keyStyle.Render("q"))
	default:
		helpText = fmt.Sprintf("%s: Nav %s %s: View %s %s: File %s %s: Search %s %s: Quit",
			keyStyle.Render("j/k"), sep, keyStyle.Render("Enter"), sep,
			keyStyle.Render("Tab"), sep, keyStyle.Render("/"), sep, keyStyle.Render("q"))
	}
	return m.styles.HelpStyle().MaxWidth(max(m.width, 0)).Render(helpText)
}

// resizeComponents handles window resize events
func (m *MainModel) resizeComponents() {
	dims := m.calculateDimensions()

	m.listView.SetSize(max(dims.leftPanelWidth-2, 0), dims.availableHeight)
	m.detailViewport.Width = max(dims.rightPanelWidth-2, 0)
	m.detailViewport.Height = dims.availableHeight
	m.updateDetailContent()
}
