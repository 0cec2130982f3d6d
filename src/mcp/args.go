package mcp

import (
	"strconv"
	"strings"

	"xcode-error-mcp/src/config"
	"xcode-error-mcp/src/jsonvalue"
)

// stringArg returns a string argument, or "" when absent or not a string.
func stringArg(args jsonvalue.Object, key string) string {
	s, _ := args[key].AsString()
	return s
}

// boolArg returns a boolean argument, or nil when absent or not a boolean.
func boolArg(args jsonvalue.Object, key string) *bool {
	b, ok := args[key].AsBool()
	if !ok {
		return nil
	}
	return &b
}

// stringsArg returns the string items of an array argument. Non-string
// items are skipped.
func stringsArg(args jsonvalue.Object, key string) []string {
	items, ok := args[key].AsArray()
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}

// numberArg accepts a JSON number or a numeric string.
func numberArg(args jsonvalue.Object, key string) (float64, bool) {
	v := args[key]
	if n, ok := v.AsNumber(); ok {
		return n, true
	}
	if s, ok := v.AsString(); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

func buildArgsFrom(args jsonvalue.Object) config.BuildArgs {
	return config.BuildArgs{
		Workspace:                   stringArg(args, "workspace"),
		Project:                     stringArg(args, "project"),
		Scheme:                      stringArg(args, "scheme"),
		Configuration:               stringArg(args, "configuration"),
		Destination:                 stringArg(args, "destination"),
		SDK:                         stringArg(args, "sdk"),
		DerivedDataPath:             stringArg(args, "derivedDataPath"),
		ClonedSourcePackagesDirPath: stringArg(args, "clonedSourcePackagesDirPath"),
		ResultBundlePath:            stringArg(args, "resultBundlePath"),
		WorkingDirectory:            stringArg(args, "workingDirectory"),
		CodeSigningAllowed:          boolArg(args, "codeSigningAllowed"),
		ExtraArgs:                   stringsArg(args, "extraArgs"),
	}
}
