package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// View manages the list of diagnostics.
type View struct {
	list     list.Model
	delegate *Delegate
}

// NewView creates a new diagnostics list view
func NewView(styles *StyleConfig) View {
	delegate := NewDelegateWithStyles(styles)
	l := list.New([]list.Item{}, &delegate, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return View{
		list:     l,
		delegate: &delegate,
	}
}

// Update handles list updates
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// SetSize sets the list dimensions
func (v *View) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// SetItems replaces the list items and resets the selection.
func (v *View) SetItems(items []Item) {
	maxRank := 0
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		maxRank = max(maxRank, item.Rank)
		listItems[i] = item
	}
	v.delegate.SetRankWidth(maxRank)
	v.list.SetItems(listItems)
	v.list.ResetSelected()
}

// Len returns the number of listed items.
func (v View) Len() int {
	return len(v.list.Items())
}

// SelectedItem returns the currently selected diagnostic
func (v View) SelectedItem() (Item, bool) {
	item, ok := v.list.SelectedItem().(Item)
	return item, ok
}

// Render returns the string representation of the view
func (v View) Render() string {
	return v.list.View()
}

// Delegate returns the row delegate for column widths.
func (v View) Delegate() *Delegate {
	return v.delegate
}
