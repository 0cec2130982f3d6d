// Package sanitize cleans captured xcodebuild output before error mining.
// Colored or hyperlinked output (xcbeautify wrappers, -quiet with a TTY)
// would otherwise hide the "error:" prefixes the line filter looks for.
package sanitize

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences (SGR, OSC, APC and friends).
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return ansi.Strip(s)
}

// Clean strips escape sequences, folds CRLF and lone CR to LF and trims
// surrounding whitespace.
func Clean(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
