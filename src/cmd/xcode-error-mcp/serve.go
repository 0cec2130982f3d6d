package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xcode-error-mcp/src/logger"
	"xcode-error-mcp/src/mcp"
	"xcode-error-mcp/src/rpc"
)

const (
	transportFramed = "framed"
	transportLines  = "lines"
)

var flagTransport string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP on stdin/stdout",
	Long: `Serve MCP on stdin/stdout.

The framed transport (default) uses Content-Length framed JSON-RPC messages.
The lines transport uses newline-delimited JSON-RPC for clients that do not
frame messages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, flagTransport)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagTransport, "transport", transportFramed, "Transport: framed or lines")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, transport string) error {
	ctx := cmd.Context()
	h := newHandler()
	appLog.Info().Str("transport", transport).Str("version", version).Msg("serving MCP on stdio")

	switch transport {
	case transportFramed:
		srv := rpc.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), rpc.WithLogger(logger.Component(appLog, "rpc")))
		if err := srv.Serve(ctx, h.Handle); err != nil && ctx.Err() == nil {
			return fmt.Errorf("serve: %w", err)
		}
	case transportLines:
		if err := mcp.ServeLines(ctx, h, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && ctx.Err() == nil {
			return fmt.Errorf("serve: %w", err)
		}
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, transportFramed, transportLines)
	}
	return nil
}
