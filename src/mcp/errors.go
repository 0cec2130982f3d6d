package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolError is a failed tool outcome. It reaches the client as a result
// flagged isError, never as a protocol error.
type ToolError struct {
	Message string
	Err     error
}

func (e *ToolError) Error() string {
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Result renders the error as a tool result.
func (e *ToolError) Result() *mcp.CallToolResult {
	return mcp.NewToolResultError(e.Message)
}
