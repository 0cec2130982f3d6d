package mcp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// noLogPlaceholder stands in for a missing log path.
const noLogPlaceholder = "—"

// Report is the plain-text body of a tool result.
type Report struct {
	Title    string
	Errors   []string
	Metadata map[string]string
}

// String renders "Title (N)", sorted "key: value" lines, a blank line and
// then the errors, or "No errors found.".
func (r Report) String() string {
	lines := []string{fmt.Sprintf("%s (%d)", r.Title, len(r.Errors))}

	keys := make([]string, 0, len(r.Metadata))
	for k := range r.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, k+": "+r.Metadata[k])
	}

	lines = append(lines, "")
	if len(r.Errors) == 0 {
		lines = append(lines, "No errors found.")
	} else {
		lines = append(lines, r.Errors...)
	}
	return strings.Join(lines, "\n")
}

// Result renders the report as a tool result.
func (r Report) Result(isError bool) *mcp.CallToolResult {
	res := mcp.NewToolResultText(r.String())
	res.IsError = isError
	return res
}
