package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"xcode-error-mcp/src/config"
	"xcode-error-mcp/src/extract"
	"xcode-error-mcp/src/jsonvalue"
	"xcode-error-mcp/src/xcodebuild"
)

// logSlack widens the "logs written by this build" window for filesystem
// timestamp granularity.
const logSlack = 2 * time.Second

const (
	msgMissingScheme    = "Missing `scheme` (arg or env XCODE_SCHEME)"
	msgMissingContainer = "Missing `workspace`/`project` (or set env XCODE_WORKSPACE/XCODE_PROJECT)"
	msgNoLog            = "No .xcactivitylog found."
)

// buildErrors runs xcodebuild and reports the errors of that build.
func (h *Handler) buildErrors(ctx context.Context, log zerolog.Logger, args jsonvalue.Object) *mcp.CallToolResult {
	params, err := h.cfg.ResolveBuild(buildArgsFrom(args))
	if err != nil {
		if errors.Is(err, config.ErrMissingScheme) {
			return (&ToolError{Message: msgMissingScheme, Err: err}).Result()
		}
		return (&ToolError{Message: err.Error(), Err: err}).Result()
	}

	container, err := xcodebuild.ContainerFor(params)
	if err != nil {
		log.Debug().Err(err).Msg("no build container")
		return (&ToolError{Message: msgMissingContainer, Err: err}).Result()
	}

	argv := xcodebuild.BuildArgs(params, container)
	log.Info().Strs("args", argv).Str("dir", params.WorkingDirectory).Msg("running xcodebuild")

	start := h.now()
	run, err := h.runner.Run(ctx, params.WorkingDirectory, argv)
	if err != nil {
		return (&ToolError{Message: fmt.Sprintf("Failed running xcodebuild: %v", err), Err: err}).Result()
	}

	logPath := noLogPlaceholder
	var errs []string
	if found, ok := h.locator.FindLatest(params.DerivedDataPath, start.Add(-logSlack)); ok {
		logPath = found.Path
		errs, err = extract.ExtractFile(found.Path)
		if err != nil {
			log.Warn().Err(err).Str("log", found.Path).Msg("log extraction failed, using process output")
		}
	}
	if len(errs) == 0 {
		errs = extract.FromOutput(run.Output())
	}

	log.Info().
		Int("exitCode", run.ExitCode).
		Int("errors", len(errs)).
		Str("log", logPath).
		Msg("build finished")

	report := Report{
		Title:  "Xcode build errors",
		Errors: errs,
		Metadata: map[string]string{
			"durationSeconds": fmt.Sprintf("%.2f", run.Elapsed.Seconds()),
			"exitCode":        strconv.Itoa(run.ExitCode),
			"log":             logPath,
		},
	}
	return report.Result(len(errs) > 0 || run.ExitCode != 0)
}

// lastErrors reports the errors of the newest existing build log.
func (h *Handler) lastErrors(log zerolog.Logger, args jsonvalue.Object) *mcp.CallToolResult {
	root := h.cfg.ResolveDerivedDataPath(stringArg(args, "derivedDataPath"))

	var since time.Time
	if secs, ok := numberArg(args, "sinceSeconds"); ok {
		since = h.now().Add(-time.Duration(secs * float64(time.Second)))
	}

	found, ok := h.locator.FindLatest(root, since)
	if !ok {
		log.Debug().Str("root", root).Msg("no build log")
		return mcp.NewToolResultText(msgNoLog)
	}

	errs, err := extract.ExtractFile(found.Path)
	if err != nil {
		return (&ToolError{Message: fmt.Sprintf("Failed extracting errors: %v", err), Err: err}).Result()
	}

	report := Report{
		Title:  "Xcode last build errors",
		Errors: errs,
		Metadata: map[string]string{
			"log":        found.Path,
			"modifiedAt": found.ModifiedAt.UTC().Format(time.RFC3339),
		},
	}
	return report.Result(len(errs) > 0)
}
