// Package extract mines compiler and linker errors out of Xcode build logs.
//
// Extraction is stateless and runs in passes over the decoded text:
//
//  1. a regex over the whole text for located diagnostics
//     ("/path/File.swift:12:5: error: ...");
//  2. a line filter for error-looking lines, each trimmed to the first
//     located diagnostic it contains;
//  3. when the first two passes find nothing located, a fusion pass joins
//     bare "file:line:col:" lines with the error line that follows them.
//
// Results are deduplicated by exact equality, keeping first-occurrence order.
package extract

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"xcode-error-mcp/src/sanitize"
)

// ErrUndecodable is returned when no decoder produces any text.
var ErrUndecodable = errors.New("log contents could not be decoded as text")

var (
	// Located diagnostic anywhere in the text
	diagnosticPattern = regexp.MustCompile(`/[^\n\r"]+?\.(swift|m|mm|c|cc|cpp|h|hpp|metal|storyboard|xib|plist|intentdefinition):\d+:\d+:[ \t]*(fatal error|error):[ \t]*[^\n\r]+`)

	// Bare location line waiting for its message on a later line
	bareLocationPattern = regexp.MustCompile(`^(.+\.(swift|m|mm|c|cc|cpp|h|hpp)):(\d+):(\d+):\s*$`)

	// Line separators: LF, VT, FF, CR, NEL, LS, PS
	lineSeparators = regexp.MustCompile("\r\n|[\n\v\f\r\u0085\u2028\u2029]")
)

// ExtractFile reads the log at path and extracts its errors.
func ExtractFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	errs, err := ExtractBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return errs, nil
}

// ExtractBytes inflates and decodes raw log bytes, then extracts errors.
// Inflated bytes are decoded first; the raw bytes are the fallback.
func ExtractBytes(data []byte) ([]string, error) {
	var text string
	if inflated := Inflate(data); inflated != nil {
		text = DecodeText(inflated)
	}
	if text == "" {
		text = DecodeText(data)
	}
	if text == "" {
		return nil, ErrUndecodable
	}
	return ExtractText(text), nil
}

// ExtractText runs the extraction passes over decoded log text.
func ExtractText(text string) []string {
	lines := splitLines(text)

	found := normalize(append(locatedDiagnostics(text), filterErrorLines(lines)...))
	if len(found) == 0 {
		return normalize(fuseLocations(lines).all)
	}
	if anyLocated(found) {
		return found
	}
	return recoverLocations(found, lines)
}

// FromOutput extracts errors from captured xcodebuild stdout and stderr.
// Matching is case-insensitive and lines are kept whole; there is no fusion
// over free-form output.
func FromOutput(output string) []string {
	var out []string
	for _, line := range splitLines(sanitize.Clean(output)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, ": warning:") || strings.HasPrefix(lower, "warning:") {
			continue
		}
		if isOutputErrorLine(lower) {
			out = append(out, line)
		}
	}
	return normalize(out)
}

func isOutputErrorLine(lower string) bool {
	return strings.Contains(lower, ": error:") ||
		strings.HasPrefix(lower, "error:") ||
		strings.HasPrefix(lower, "fatal error:") ||
		strings.HasPrefix(lower, "ld: error:") ||
		strings.Contains(lower, "command compileswift failed") ||
		strings.Contains(lower, "command ld failed") ||
		(strings.Contains(lower, "compile") && strings.Contains(lower, "failed"))
}

// recoverLocations swaps each file-less error line for the located
// diagnostic fused from it, keeping its position.
func recoverLocations(found []string, lines []string) []string {
	fused := fuseLocations(lines)
	if len(fused.joined) == 0 {
		return found
	}

	out := make([]string, 0, len(found))
	for _, f := range found {
		if entry, ok := fused.absorbed[f]; ok {
			out = append(out, entry)
		} else {
			out = append(out, f)
		}
	}
	return normalize(out)
}

func splitLines(text string) []string {
	return lineSeparators.Split(text, -1)
}

// locatedDiagnostics is the whole-text regex pass.
func locatedDiagnostics(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, m := range diagnosticPattern.FindAllString(text, -1) {
		if s := strings.TrimSpace(m); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// filterErrorLines is the line-filter pass.
func filterErrorLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(trimmed, " warning:") {
			continue
		}
		if isErrorLine(trimmed) {
			out = append(out, trimToDiagnostic(trimmed))
		}
	}
	return out
}

func isErrorLine(line string) bool {
	return strings.Contains(line, ": error:") ||
		strings.HasPrefix(line, "error:") ||
		strings.HasPrefix(line, "fatal error:") ||
		strings.HasPrefix(line, "ld: error:") ||
		(strings.Contains(line, "CompileSwiftSources normal") && strings.Contains(line, "failed")) ||
		strings.Contains(line, "Command CompileSwift failed") ||
		strings.Contains(line, "Command Ld failed")
}

type fusion struct {
	// all fused output, in line order
	all []string
	// entries built by joining a location with a later line
	joined []string
	// trimmed line consumed into a joined entry, mapped to that entry
	absorbed map[string]string
}

// fuseLocations joins bare location lines with the error line that follows.
func fuseLocations(lines []string) fusion {
	f := fusion{absorbed: make(map[string]string)}
	pending := ""

	join := func(line, message string) {
		entry := trimToDiagnostic(pending + " error: " + message)
		f.all = append(f.all, entry)
		f.joined = append(f.joined, entry)
		if _, seen := f.absorbed[line]; !seen {
			f.absorbed[line] = entry
		}
		pending = ""
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if bareLocationPattern.MatchString(line) {
			pending = line
			continue
		}

		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "error:") || strings.HasPrefix(lower, "fatal error:") {
			if pending != "" {
				_, after, _ := strings.Cut(line, ":")
				join(line, strings.TrimSpace(after))
			} else {
				f.all = append(f.all, trimToDiagnostic(line))
			}
			continue
		}

		if pending != "" && (strings.Contains(line, "expected") || strings.Contains(line, "use of unresolved identifier")) {
			join(line, line)
		}
	}
	return f
}

func trimToDiagnostic(line string) string {
	if line == "" {
		return line
	}
	if m := diagnosticPattern.FindString(line); m != "" {
		return strings.TrimSpace(m)
	}
	return line
}

func hasLocation(s string) bool {
	return diagnosticPattern.MatchString(s)
}

func anyLocated(results []string) bool {
	for _, r := range results {
		if hasLocation(r) {
			return true
		}
	}
	return false
}

// normalize drops empties and duplicates, keeping first-occurrence order.
func normalize(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
