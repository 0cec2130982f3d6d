package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcode-error-mcp/src/locator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeLog(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestExtractCommand(t *testing.T) {
	path := writeLog(t, t.TempDir(), "build.xcactivitylog",
		"/src/Foo.swift:10:5: error: missing return\n/src/Foo.swift:11:1: warning: unused\n")

	out, err := execute(t, "extract", path)
	assert.ErrorIs(t, err, errReported)
	assert.Equal(t, "/src/Foo.swift:10:5: error: missing return\n", out)
}

func TestExtractCommandClean(t *testing.T) {
	path := writeLog(t, t.TempDir(), "build.xcactivitylog", "Build succeeded\n")

	out, err := execute(t, "extract", path)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestLastCommandNoLog(t *testing.T) {
	out, err := execute(t, "last", "--derived-data", t.TempDir())
	assert.NoError(t, err)
	assert.Equal(t, "No .xcactivitylog found.\n", out)
}

func TestServeUnknownTransport(t *testing.T) {
	_, err := execute(t, "serve", "--transport", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
	flagTransport = transportFramed
}

func TestServeFramedEndsAtEOF(t *testing.T) {
	out, err := execute(t, "serve")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestBuildArgumentsOnlyChangedFlags(t *testing.T) {
	require.NoError(t, buildCmd.ParseFlags([]string{"--scheme", "App", "--extra-arg", "-quiet", "--code-signing=false"}))
	t.Cleanup(func() {
		buildCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		flagExtraArgs = nil
	})

	args := buildArguments(buildCmd)
	scheme, _ := args["scheme"].AsString()
	assert.Equal(t, "App", scheme)
	assert.NotContains(t, args, "project")

	signing, ok := args["codeSigningAllowed"].AsBool()
	assert.True(t, ok)
	assert.False(t, signing)

	extra, ok := args["extraArgs"].AsArray()
	require.True(t, ok)
	require.Len(t, extra, 1)
}

func TestBrowseLoaderFindsLatest(t *testing.T) {
	root := t.TempDir()
	path := writeLog(t, root, filepath.Join("Logs", "Build", "1.xcactivitylog"), "error: boom")

	load := browseLoader(&locator.Locator{}, root, "")
	gotPath, errs, err := load()
	require.NoError(t, err)
	assert.Equal(t, path, gotPath)
	assert.Equal(t, []string{"error: boom"}, errs)

	_, _, err = browseLoader(&locator.Locator{}, t.TempDir(), "")()
	assert.EqualError(t, err, "no .xcactivitylog found")
}
