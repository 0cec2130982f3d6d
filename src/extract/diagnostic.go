package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var locatedLinePattern = regexp.MustCompile(`^(.+?):(\d+):(\d+):\s*(fatal error|error|warning|note):\s*(.*)$`)

// Diagnostic is one extracted error split into its parts. File, Line and
// Column are zero when the error carries no source location.
type Diagnostic struct {
	Raw      string
	File     string
	Line     int
	Column   int
	Severity string
	Message  string
}

// HasLocation reports whether the diagnostic points at a source position.
func (d Diagnostic) HasLocation() bool {
	return d.File != ""
}

// Location renders "file:line:col", or "" without a location.
func (d Diagnostic) Location() string {
	if !d.HasLocation() {
		return ""
	}
	return d.File + ":" + strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column)
}

// Parse splits an extracted error string. Strings without a location keep
// the whole text as the message; a leading "error:" style prefix is lifted
// into Severity.
func Parse(s string) Diagnostic {
	s = strings.TrimSpace(s)
	d := Diagnostic{Raw: s, Severity: "error", Message: s}

	if m := locatedLinePattern.FindStringSubmatch(s); m != nil {
		line, errLine := strconv.Atoi(m[2])
		col, errCol := strconv.Atoi(m[3])
		if errLine == nil && errCol == nil {
			d.File = m[1]
			d.Line = line
			d.Column = col
			d.Severity = m[4]
			d.Message = m[5]
			return d
		}
	}

	for _, prefix := range []string{"fatal error:", "ld: error:", "error:"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			d.Severity = strings.TrimSuffix(strings.TrimPrefix(prefix, "ld: "), ":")
			d.Message = strings.TrimSpace(rest)
			break
		}
	}
	return d
}

// ParseAll parses every extracted error.
func ParseAll(errs []string) []Diagnostic {
	out := make([]Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = Parse(e)
	}
	return out
}
