package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// VisualWidth returns the display width of text, accounting for wide runes
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to maxLen display columns, optionally ending in "...".
func Truncate(s string, maxLen int, ellipsis bool) string {
	s = strings.TrimSpace(s)
	if maxLen <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxLen {
		return s
	}
	if ellipsis && maxLen > 3 {
		return runewidth.Truncate(s, maxLen-3, "") + "..."
	}
	return runewidth.Truncate(s, maxLen, "")
}

// TruncateAndPad truncates s and pads it to exactly width columns.
func TruncateAndPad(s string, width int, ellipsis bool) string {
	s = Truncate(s, width, ellipsis)
	return runewidth.FillRight(s, width)
}

// Wrap breaks text into lines of at most width columns, on word boundaries
// where possible. Words wider than width are split.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	line := ""
	flush := func() {
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
	}

	for _, word := range strings.Fields(text) {
		for VisualWidth(word) > width {
			flush()
			chunk := runewidth.Truncate(word, width, "")
			if chunk == "" {
				// a single rune wider than width
				chunk = string([]rune(word)[:1])
			}
			lines = append(lines, chunk)
			word = word[len(chunk):]
		}
		switch {
		case word == "":
		case line == "":
			line = word
		case VisualWidth(line)+1+VisualWidth(word) <= width:
			line += " " + word
		default:
			flush()
			line = word
		}
	}
	flush()

	if len(lines) == 0 {
		return text
	}
	return strings.Join(lines, "\n")
}
