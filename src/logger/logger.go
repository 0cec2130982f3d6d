// Package logger builds the zerolog loggers used throughout the application.
// Logs always go to stderr by default: stdout carries protocol traffic.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a logger.
type Options struct {
	// Debug lowers the level from info to debug.
	Debug bool

	// JSON writes structured JSON lines instead of console output.
	JSON bool

	// Out overrides the destination (stderr when nil).
	Out io.Writer
}

// New creates a logger writing to stderr, or opts.Out when set.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: opts.Out != nil}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("app", "xcode-error-mcp").Logger()
}

// Silent returns a logger that discards everything.
// Used by the browser so log output does not tear the terminal UI.
func Silent() zerolog.Logger {
	return zerolog.Nop()
}

// Component tags a logger with the subsystem emitting through it.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
