// Package main is the xcode-error-mcp command: an MCP server that runs
// xcodebuild and reports only the errors, plus CLI access to the same flows.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"xcode-error-mcp/src/config"
	"xcode-error-mcp/src/logger"
	"xcode-error-mcp/src/mcp"
)

// version is overridden at link time.
var version = mcp.DefaultVersion

// errReported means the command already printed its failure.
var errReported = errors.New("failure reported")

var (
	appConfig *config.Config
	appLog    zerolog.Logger

	flagDebug   bool
	flagJSONLog bool
	flagConfig  string
	flagEnvFile string
)

// rootCmd represents the base command; without a subcommand it serves MCP.
var rootCmd = &cobra.Command{
	Use:   "xcode-error-mcp",
	Short: "MCP server that builds Xcode projects and reports only the errors",
	Long: `xcode-error-mcp speaks the Model Context Protocol on stdio. It runs
xcodebuild, finds the resulting .xcactivitylog and returns only the compiler
and linker errors, leaving out warnings and build noise.

Build parameters come from tool arguments, then XCODE_* environment
variables, then the optional --config defaults file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagEnvFile == "" && flagConfig == "" {
			appConfig, err = config.LoadFromEnv()
		} else {
			appConfig, err = config.Load(config.Options{
				EnvFile:      flagEnvFile,
				DefaultsFile: flagConfig,
			})
		}
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		appLog = logger.New(logger.Options{
			Debug: flagDebug || appConfig.Debug,
			JSON:  flagJSONLog,
		})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, transportFramed)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging (also XCODE_ERROR_MCP_DEBUG=1)")
	pf.BoolVar(&flagJSONLog, "json-log", false, "Write logs to stderr as JSON lines")
	pf.StringVar(&flagConfig, "config", "", "YAML file with default build parameters")
	pf.StringVar(&flagEnvFile, "env-file", "", "dotenv file layered under the process environment")
}

// newHandler builds the MCP handler over the loaded configuration.
func newHandler() *mcp.Handler {
	return mcp.NewHandler(appConfig,
		mcp.WithLogger(logger.Component(appLog, "mcp")),
		mcp.WithVersion(version),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
