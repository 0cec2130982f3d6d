// Package xcodebuild runs the xcodebuild command line tool.
package xcodebuild

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Result is the outcome of a finished xcodebuild process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
}

// Output joins stdout and stderr for fallback error mining.
func (r *Result) Output() string {
	return r.Stdout + "\n" + r.Stderr
}

// Runner executes xcodebuild with the given arguments in dir.
// An error means the process could not be started; a non-zero exit is
// reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, dir string, args []string) (*Result, error)
}

// ExecRunner runs a real executable.
type ExecRunner struct {
	Path string
	Log  zerolog.Logger
}

// NewExecRunner returns a runner for the executable at path.
func NewExecRunner(path string, log zerolog.Logger) *ExecRunner {
	return &ExecRunner{Path: path, Log: log}
}

// Run blocks until the process exits. Output is fully buffered.
func (r *ExecRunner) Run(ctx context.Context, dir string, args []string) (*Result, error) {
	cmd := exec.CommandContext(ctx, r.Path, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Log.Debug().Str("path", r.Path).Strs("args", args).Str("dir", dir).Msg("starting xcodebuild")

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("start %s: %w", r.Path, err)
		}
		exitCode = exitErr.ExitCode()
	}

	r.Log.Debug().Int("exitCode", exitCode).Dur("elapsed", elapsed).Msg("xcodebuild finished")

	return &Result{
		ExitCode: exitCode,
		Stdout:   strings.ToValidUTF8(stdout.String(), "\uFFFD"),
		Stderr:   strings.ToValidUTF8(stderr.String(), "\uFFFD"),
		Elapsed:  elapsed,
	}, nil
}
