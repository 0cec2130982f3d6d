package tui

import "xcode-error-mcp/src/extract"

// noLocation labels diagnostics without a source file.
const noLocation = "(no location)"

// Item is one extracted error in the browser list. It implements
// bubbles/list.Item.
type Item struct {
	Diag extract.Diagnostic
	Rank int
}

// NewItems wraps extracted errors, ranked in extraction order.
func NewItems(errs []string) []Item {
	items := make([]Item, len(errs))
	for i, d := range extract.ParseAll(errs) {
		items[i] = Item{Diag: d, Rank: i + 1}
	}
	return items
}

// FilterValue is the value used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Diag.Raw }

// Title returns the diagnostic message.
func (i Item) Title() string { return i.Diag.Message }

// Description returns the source location.
func (i Item) Description() string { return i.Location() }

// Location returns "file:line:col" or a placeholder.
func (i Item) Location() string {
	if loc := i.Diag.Location(); loc != "" {
		return loc
	}
	return noLocation
}

// File returns the source file or a placeholder.
func (i Item) File() string {
	if i.Diag.File != "" {
		return i.Diag.File
	}
	return noLocation
}
