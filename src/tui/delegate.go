package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// locationWidth caps the location column.
const locationWidth = 36

// Delegate renders diagnostics as table rows: rank, location, message.
type Delegate struct {
	RankWidth int
	styles    *StyleConfig
}

// NewDelegate creates a delegate with default styles
func NewDelegate() Delegate {
	return NewDelegateWithStyles(DefaultStyles())
}

// NewDelegateWithStyles creates a delegate with custom styles
func NewDelegateWithStyles(styles *StyleConfig) Delegate {
	return Delegate{RankWidth: 2, styles: styles}
}

// SetRankWidth sizes the rank column for the largest rank.
func (d *Delegate) SetRankWidth(maxRank int) {
	d.RankWidth = max(len(fmt.Sprint(maxRank)), 2)
}

// Height returns the height of a list item
func (d Delegate) Height() int { return 1 }

// Spacing returns spacing between items
func (d Delegate) Spacing() int { return 0 }

// Update handles item updates
func (d Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// columns splits a row width into location and message widths.
func (d Delegate) columns(width int) (loc, msg int) {
	// rank + two " │ " separators
	rest := width - d.RankWidth - 6
	loc = min(locationWidth, rest/3)
	return max(loc, 0), max(rest-loc, 0)
}

// Render renders a list item
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(Item)
	if !ok {
		return
	}

	locWidth, msgWidth := d.columns(m.Width())
	line := fmt.Sprintf("%*d │ %s │ %s",
		d.RankWidth, entry.Rank,
		TruncateAndPad(entry.Location(), locWidth, true),
		Truncate(entry.Diag.Message, msgWidth, true))
	line = TruncateAndPad(line, m.Width(), false)

	style := lipgloss.NewStyle().Foreground(d.styles.TextSecondary)
	if index == m.Index() {
		style = style.Bold(true).Foreground(d.styles.PrimaryBlue).Background(d.styles.SelectedColor)
	}
	fmt.Fprint(w, style.Render(line))
}
