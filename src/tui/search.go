package tui

import (
	"sort"
	"strings"
)

// applyFilter narrows the list by the header's file filter and the search
// query, then refreshes the detail panel.
func (m *MainModel) applyFilter() {
	filter := m.header.Filter()
	query := strings.ToLower(m.searchQuery)

	var filtered []Item
	for _, item := range m.items {
		if filter != allFiles && item.File() != filter {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Diag.Raw), query) {
			continue
		}
		filtered = append(filtered, item)
	}

	m.listView.SetItems(filtered)
	m.updateDetailContent()
}

// distinctFiles lists the source files of items in sorted order.
func distinctFiles(items []Item) []string {
	seen := make(map[string]bool)
	var files []string
	for _, item := range items {
		if f := item.File(); !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files
}
