package mcp

import (
	"context"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"xcode-error-mcp/src/jsonvalue"
)

// NewLineServer registers the tool catalog on an mcp-go server backed by h,
// for clients speaking newline-delimited JSON-RPC.
func NewLineServer(h *Handler) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		h.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, tool := range Catalog() {
		s.AddTool(tool, h.toolHandler(tool.Name))
	}
	return s
}

// ServeLines serves newline-delimited JSON-RPC on in and out until ctx is
// cancelled or in ends.
func ServeLines(ctx context.Context, h *Handler, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(NewLineServer(h))
	stdio.SetErrorLogger(log.New(h.log, "", 0))
	return stdio.Listen(ctx, in, out)
}

func (h *Handler) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := argumentsOf(req)
		if err != nil {
			return mcp.NewToolResultError("Invalid params"), nil
		}
		res, _ := h.CallTool(ctx, name, args)
		return res, nil
	}
}

func argumentsOf(req mcp.CallToolRequest) (jsonvalue.Object, error) {
	raw := req.GetArguments()
	if raw == nil {
		return jsonvalue.Object{}, nil
	}
	v, err := jsonvalue.FromAny(raw)
	if err != nil {
		return nil, err
	}
	obj, _ := v.AsObject()
	return obj, nil
}
