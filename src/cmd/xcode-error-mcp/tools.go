package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"xcode-error-mcp/src/jsonvalue"
	xmcp "xcode-error-mcp/src/mcp"
)

var (
	flagBuildStrings = map[string]*string{}
	flagExtraArgs    []string
	flagCodeSigning  bool

	flagLastDerivedData string
	flagLastSince       float64
)

// buildStringFlags maps tool argument names to flag names.
var buildStringFlags = []struct {
	arg   string
	flag  string
	usage string
}{
	{"workspace", "workspace", "Path to a .xcworkspace"},
	{"project", "project", "Path to a .xcodeproj"},
	{"scheme", "scheme", "Scheme to build"},
	{"configuration", "configuration", "Build configuration (e.g. Debug/Release)"},
	{"destination", "destination", "xcodebuild -destination value"},
	{"sdk", "sdk", "xcodebuild -sdk value"},
	{"derivedDataPath", "derived-data", "xcodebuild -derivedDataPath value"},
	{"clonedSourcePackagesDirPath", "cloned-source-packages", "xcodebuild -clonedSourcePackagesDirPath value"},
	{"resultBundlePath", "result-bundle", "xcodebuild -resultBundlePath value"},
	{"workingDirectory", "working-directory", "Working directory for xcodebuild"},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run xcodebuild and print only the build errors",
	Long: `Run xcodebuild and print only the build errors.

Unset flags fall back to XCODE_* environment variables and then the
--config defaults file. Exits 1 when the build fails or reports errors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, xmcp.ToolBuildErrors, buildArguments(cmd))
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the errors of the most recent build log in DerivedData",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := jsonvalue.Object{}
		if flagLastDerivedData != "" {
			fields["derivedDataPath"] = jsonvalue.String(flagLastDerivedData)
		}
		if cmd.Flags().Changed("since") {
			fields["sinceSeconds"] = jsonvalue.Number(flagLastSince)
		}
		return runTool(cmd, xmcp.ToolLastErrors, fields)
	},
}

func init() {
	f := buildCmd.Flags()
	for _, sf := range buildStringFlags {
		flagBuildStrings[sf.arg] = f.String(sf.flag, "", sf.usage)
	}
	f.StringArrayVar(&flagExtraArgs, "extra-arg", nil, "Extra xcodebuild argument (repeatable)")
	f.BoolVar(&flagCodeSigning, "code-signing", false, "Sets CODE_SIGNING_ALLOWED=YES/NO")

	lastCmd.Flags().StringVar(&flagLastDerivedData, "derived-data", "", "DerivedData path (if you used -derivedDataPath)")
	lastCmd.Flags().Float64Var(&flagLastSince, "since", 0, "Only consider logs modified in the last N seconds")

	rootCmd.AddCommand(buildCmd, lastCmd)
}

// buildArguments turns the flags the user set into tool arguments.
func buildArguments(cmd *cobra.Command) jsonvalue.Object {
	flags := cmd.Flags()
	fields := jsonvalue.Object{}
	for _, sf := range buildStringFlags {
		if flags.Changed(sf.flag) {
			fields[sf.arg] = jsonvalue.String(*flagBuildStrings[sf.arg])
		}
	}
	if len(flagExtraArgs) > 0 {
		items := make([]jsonvalue.Value, len(flagExtraArgs))
		for i, a := range flagExtraArgs {
			items[i] = jsonvalue.String(a)
		}
		fields["extraArgs"] = jsonvalue.Array(items...)
	}
	if flags.Changed("code-signing") {
		fields["codeSigningAllowed"] = jsonvalue.Bool(flagCodeSigning)
	}
	return fields
}

// runTool calls a tool in-process and prints its text.
func runTool(cmd *cobra.Command, name string, args jsonvalue.Object) error {
	res, ok := newHandler().CallTool(cmd.Context(), name, args)
	if !ok {
		return fmt.Errorf("unknown tool %q", name)
	}

	out := cmd.OutOrStdout()
	for _, c := range res.Content {
		if text, ok := c.(mcp.TextContent); ok {
			fmt.Fprintln(out, text.Text)
		}
	}
	if res.IsError {
		return errReported
	}
	return nil
}
