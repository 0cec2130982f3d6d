package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	ToolBuildErrors = "xcode_build_errors"
	ToolLastErrors  = "xcode_last_errors"
)

// Catalog returns the tools this server exposes.
//
// scheme is not marked required in the schema: XCODE_SCHEME or the defaults
// file may supply it.
func Catalog() []mcp.Tool {
	return []mcp.Tool{buildErrorsTool(), lastErrorsTool()}
}

func buildErrorsTool() mcp.Tool {
	return mcp.NewTool(ToolBuildErrors,
		mcp.WithDescription("Run xcodebuild and return only build errors (no warnings)."),
		mcp.WithString("workspace", mcp.Description("Path to a .xcworkspace")),
		mcp.WithString("project", mcp.Description("Path to a .xcodeproj")),
		mcp.WithString("scheme", mcp.Description("Scheme to build")),
		mcp.WithString("configuration", mcp.Description("Build configuration (e.g. Debug/Release)")),
		mcp.WithString("destination", mcp.Description("xcodebuild -destination value")),
		mcp.WithString("sdk", mcp.Description("xcodebuild -sdk value")),
		mcp.WithString("derivedDataPath", mcp.Description("xcodebuild -derivedDataPath value")),
		mcp.WithString("clonedSourcePackagesDirPath", mcp.Description("xcodebuild -clonedSourcePackagesDirPath value")),
		mcp.WithString("resultBundlePath", mcp.Description("xcodebuild -resultBundlePath value")),
		mcp.WithArray("extraArgs",
			mcp.Description("Extra xcodebuild arguments appended before the build action"),
			mcp.WithStringItems(),
		),
		mcp.WithString("workingDirectory", mcp.Description("Working directory for xcodebuild")),
		mcp.WithBoolean("codeSigningAllowed", mcp.Description("Sets CODE_SIGNING_ALLOWED=YES/NO")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

func lastErrorsTool() mcp.Tool {
	return mcp.NewTool(ToolLastErrors,
		mcp.WithDescription("Extract errors (no warnings) from the most recent .xcactivitylog in DerivedData."),
		mcp.WithString("derivedDataPath", mcp.Description("DerivedData path (if you used -derivedDataPath)")),
		mcp.WithNumber("sinceSeconds", mcp.Description("Only consider logs modified in the last N seconds")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
