package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail renders the detail content for a diagnostic
func (m MainModel) renderDetail(item Item, maxWidth int) string {
	var content strings.Builder

	label := lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Bold(true)
	value := lipgloss.NewStyle().Foreground(m.styles.TextPrimary)

	if item.Diag.HasLocation() {
		fmt.Fprintln(&content, label.Render("File:"))
		fmt.Fprintln(&content, value.Render(Wrap(item.Diag.File, maxWidth)))
		fmt.Fprintln(&content, label.Render("Line:")+" "+value.Render(fmt.Sprintf("%d, column %d", item.Diag.Line, item.Diag.Column)))
		fmt.Fprintln(&content)
	}

	severity := lipgloss.NewStyle().Foreground(m.styles.SeverityColor(item.Diag.Severity)).Bold(true)
	fmt.Fprintln(&content, severity.Render(strings.ToUpper(item.Diag.Severity)+":"))
	fmt.Fprintln(&content, severity.UnsetBold().Render(Wrap(item.Diag.Message, maxWidth)))
	fmt.Fprintln(&content)

	fmt.Fprintln(&content, label.Render("Raw:"))
	fmt.Fprint(&content, lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Faint(true).Render(Wrap(item.Diag.Raw, maxWidth)))

	return content.String()
}

// updateDetailContent shows the selected diagnostic in the viewport.
func (m *MainModel) updateDetailContent() {
	item, ok := m.listView.SelectedItem()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	// 1 char padding on each side
	m.detailViewport.SetContent(m.renderDetail(item, m.detailViewport.Width-2))
	m.detailViewport.GotoTop()
}

// renderDetailPanel renders the right panel with the detail viewport
func (m MainModel) renderDetailPanel(width, height int) string {
	title := " "
	body := ""
	if item, ok := m.listView.SelectedItem(); ok {
		title = fmt.Sprintf("#%d %s", item.Rank, item.Location())
		body = m.detailViewport.View()
	} else {
		body = lipgloss.NewStyle().
			Width(max(width-2, 0)).
			Align(lipgloss.Center).
			Foreground(m.styles.TextSecondary).
			Faint(true).
			Render("No matching errors")
	}

	headerRow := lipgloss.NewStyle().
		Foreground(m.styles.PrimaryBlue).
		Bold(true).
		Padding(0, 1).
		Render(Truncate(title, width-2, true))

	return lipgloss.JoinVertical(lipgloss.Left, headerRow,
		m.styles.PanelStyle(width, height, m.detailFocused).Render(body))
}
