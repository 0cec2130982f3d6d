package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// allFiles is the file filter that shows every diagnostic.
const allFiles = "ALL"

// Header is the top status bar.
type Header struct {
	logPath        string
	total          int
	selectedFilter string
	files          []string
	searchQuery    string
	searchMode     bool
	styles         *StyleConfig
}

// NewHeader creates a header for the given log with default styles
func NewHeader(logPath string, total int, files []string) Header {
	return NewHeaderWithStyles(logPath, total, files, DefaultStyles())
}

// NewHeaderWithStyles creates a header with custom styles
func NewHeaderWithStyles(logPath string, total int, files []string, styles *StyleConfig) Header {
	return Header{
		logPath:        logPath,
		total:          total,
		selectedFilter: allFiles,
		files:          files,
		styles:         styles,
	}
}

// Filter returns the current file filter
func (h Header) Filter() string {
	return h.selectedFilter
}

// CycleFilter moves to the next file filter, wrapping back to ALL.
func (h *Header) CycleFilter() {
	filters := append([]string{allFiles}, h.files...)
	next := 0
	for i, f := range filters {
		if f == h.selectedFilter {
			next = (i + 1) % len(filters)
			break
		}
	}
	h.selectedFilter = filters[next]
}

// SetSearch updates the search state
func (h *Header) SetSearch(query string, mode bool) {
	h.searchQuery = query
	h.searchMode = mode
}

// Render renders the header
func (h Header) Render(width int) string {
	filter := h.selectedFilter
	if filter != allFiles {
		filter = filepath.Base(filter)
	}

	var search string
	switch {
	case h.searchMode:
		search = fmt.Sprintf("Search: %s█", h.searchQuery)
	case h.searchQuery != "":
		search = fmt.Sprintf("Search: %s", h.searchQuery)
	default:
		search = "[/] to search"
	}

	text := fmt.Sprintf("%s │ %d errors │ File: %s │ %s",
		filepath.Base(h.logPath), h.total, filter, search)

	style := lipgloss.NewStyle().
		Foreground(h.styles.PrimaryBlue).
		Background(h.styles.DarkBackground).
		Bold(true).
		Padding(0, 1).
		Width(max(width, 0)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(h.styles.BorderColor)

	return style.Render(Truncate(text, width-2, true))
}
