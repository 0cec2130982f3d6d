package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"xcode-error-mcp/src/sanitize"
)

// createTestModel returns a sized browser already loaded with errs.
func createTestModel(errs []string, width, height int) MainModel {
	model := NewMainModel(func() (string, []string, error) { return "", nil, nil })
	updated, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	updated, _ = updated.Update(LoadedMsg{LogPath: "/dd/App/Logs/Build/1.xcactivitylog", Errors: errs})
	return updated.(MainModel)
}

func overflowingLines(view string, width int) []string {
	var violations []string
	for i, line := range strings.Split(view, "\n") {
		stripped := sanitize.StripANSI(line)
		if w := VisualWidth(stripped); w > width {
			violations = append(violations, fmt.Sprintf(
				"Line %d exceeds width (%d > %d): %s", i, w, width, truncateString(stripped, 100)))
		}
	}
	return violations
}

// TestDetailPanel_LongMessageOverflow checks that a long diagnostic message
// neither overflows the terminal nor the detail viewport.
func TestDetailPanel_LongMessageOverflow(t *testing.T) {
	longMessage := strings.Repeat("cannot convert value of type 'Array<Dictionary<String, Any>>' to expected argument type ", 4)
	errs := []string{
		"/Users/dev/Projects/App/Sources/Feature/Networking/APIClient+Requests.swift:120:17: error: " + longMessage,
	}

	terminalWidth := 100
	m := createTestModel(errs, terminalWidth, 30)

	if violations := overflowingLines(m.View(), terminalWidth); len(violations) > 0 {
		t.Errorf("Found %d lines overflowing terminal width:\n%s",
			len(violations), strings.Join(violations, "\n"))
	}

	// Detail is 55% of 100 columns, minus the border
	expectedContentWidth := 55 - 2
	if m.detailViewport.Width > expectedContentWidth {
		t.Errorf("Detail viewport width (%d) exceeds expected content width (%d)",
			m.detailViewport.Width, expectedContentWidth)
	}

	if violations := overflowingLines(m.detailViewport.View(), m.detailViewport.Width); len(violations) > 0 {
		t.Errorf("Found %d detail lines overflowing viewport width:\n%s",
			len(violations), strings.Join(violations, "\n"))
	}
}

// TestDetailPanel_VeryLongSingleWord checks that words wider than the
// viewport are broken.
func TestDetailPanel_VeryLongSingleWord(t *testing.T) {
	longWord := strings.Repeat("abcdefghijklmnopqrstuvwxyz", 20)
	errs := []string{"error: " + longWord}

	terminalWidth := 80
	m := createTestModel(errs, terminalWidth, 30)

	if violations := overflowingLines(m.View(), terminalWidth); len(violations) > 0 {
		t.Errorf("Long word test failed - found %d overflowing lines:\n%s",
			len(violations), strings.Join(violations, "\n"))
	}
}

// TestView_FitsTerminalHeight checks that many diagnostics do not push the
// layout past the terminal height.
func TestView_FitsTerminalHeight(t *testing.T) {
	var errs []string
	for i := 0; i < 200; i++ {
		errs = append(errs, fmt.Sprintf("/src/File%d.swift:%d:1: error: problem %d", i%7, i+1, i))
	}

	terminalHeight := 24
	m := createTestModel(errs, 80, terminalHeight)

	lines := strings.Split(m.View(), "\n")
	if len(lines) > terminalHeight {
		t.Errorf("expected at most %d lines, got %d", terminalHeight, len(lines))
	}
	if violations := overflowingLines(m.View(), 80); len(violations) > 0 {
		t.Errorf("Found %d lines overflowing terminal width:\n%s",
			len(violations), strings.Join(violations, "\n"))
	}
}

// Helper function to truncate a string for display in error messages
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
