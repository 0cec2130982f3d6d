// Package mcp exposes Xcode build error extraction as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"xcode-error-mcp/src/config"
	"xcode-error-mcp/src/jsonvalue"
	"xcode-error-mcp/src/locator"
	"xcode-error-mcp/src/rpc"
	"xcode-error-mcp/src/xcodebuild"
)

// ProtocolVersion is the MCP revision answered to initialize.
const ProtocolVersion = "2024-11-05"

// ServerName identifies this server to clients.
const ServerName = "xcode-error-mcp"

// DefaultVersion is reported when no version is configured.
const DefaultVersion = "0.1.0"

// LogLocator finds the newest build log.
type LogLocator interface {
	FindLatest(root string, since time.Time) (locator.BuildLog, bool)
}

// Handler answers MCP requests.
type Handler struct {
	cfg     *config.Config
	locator LogLocator
	runner  xcodebuild.Runner
	now     func() time.Time
	log     zerolog.Logger
	version string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRunner replaces the xcodebuild runner.
func WithRunner(r xcodebuild.Runner) HandlerOption {
	return func(h *Handler) { h.runner = r }
}

// WithLocator replaces the build log locator.
func WithLocator(l LogLocator) HandlerOption {
	return func(h *Handler) { h.locator = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// WithLogger sets the handler logger.
func WithLogger(l zerolog.Logger) HandlerOption {
	return func(h *Handler) { h.log = l }
}

// WithVersion sets the version reported in serverInfo.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// NewHandler creates a Handler over cfg. Without options it runs the
// configured xcodebuild and searches the default DerivedData root.
func NewHandler(cfg *config.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		cfg:     cfg,
		now:     time.Now,
		log:     zerolog.Nop(),
		version: DefaultVersion,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.locator == nil {
		h.locator = locator.New()
	}
	if h.runner == nil {
		h.runner = xcodebuild.NewExecRunner(cfg.XcodebuildPath, h.log)
	}
	return h
}

type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    capabilities       `json:"capabilities"`
	ServerInfo      mcp.Implementation `json:"serverInfo"`
}

type capabilities struct {
	Tools toolsCapability `json:"tools"`
}

type toolsCapability struct {
	ListChanged bool `json:"listChanged"`
}

type callParams struct {
	Name      *string          `json:"name"`
	Arguments jsonvalue.Object `json:"arguments"`
}

// Handle implements rpc.HandlerFunc.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, *rpc.Error) {
	switch method {
	case "initialize":
		return initializeResult{
			ProtocolVersion: ProtocolVersion,
			ServerInfo:      mcp.Implementation{Name: ServerName, Version: h.version},
		}, nil
	case "tools/list":
		return mcp.ListToolsResult{Tools: Catalog()}, nil
	case "tools/call":
		return h.handleToolsCall(ctx, params)
	case "ping":
		return map[string]bool{"ok": true}, nil
	default:
		return nil, rpc.NewError(rpc.MethodNotFound, "Method not found").WithData(jsonvalue.String(method))
	}
}

func (h *Handler) handleToolsCall(ctx context.Context, params json.RawMessage) (any, *rpc.Error) {
	if params == nil {
		return nil, rpc.NewError(rpc.InvalidParams, "Missing params")
	}

	var p callParams
	if err := json.Unmarshal(params, &p); err != nil || p.Name == nil {
		return nil, rpc.NewError(rpc.InvalidParams, "Invalid params")
	}

	res, ok := h.CallTool(ctx, *p.Name, p.Arguments)
	if !ok {
		return nil, rpc.NewError(rpc.InvalidParams, "Unknown tool").WithData(jsonvalue.String(*p.Name))
	}
	return res, nil
}

// CallTool runs the named tool. ok is false for an unknown tool name.
func (h *Handler) CallTool(ctx context.Context, name string, args jsonvalue.Object) (res *mcp.CallToolResult, ok bool) {
	log := h.log.With().
		Str("tool", name).
		Str("invocation", uuid.NewString()).
		Logger()

	start := h.now()
	switch name {
	case ToolBuildErrors:
		res = h.buildErrors(ctx, log, args)
	case ToolLastErrors:
		res = h.lastErrors(log, args)
	default:
		log.Debug().Msg("unknown tool")
		return nil, false
	}

	log.Debug().
		Bool("isError", res.IsError).
		Dur("elapsed", h.now().Sub(start)).
		Msg("tool call finished")
	return res, true
}
