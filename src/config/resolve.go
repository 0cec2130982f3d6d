package config

import (
	"errors"
	"strings"
)

// DefaultConfiguration is the build configuration when none is given.
const DefaultConfiguration = "Debug"

// ErrMissingScheme is returned when no layer supplies a scheme.
var ErrMissingScheme = errors.New("missing scheme")

// BuildArgs are the explicit build parameters of one tool call. Empty
// strings and nil pointers mean "not given".
type BuildArgs struct {
	Workspace                   string
	Project                     string
	Scheme                      string
	Configuration               string
	Destination                 string
	SDK                         string
	DerivedDataPath             string
	ClonedSourcePackagesDirPath string
	ResultBundlePath            string
	WorkingDirectory            string
	CodeSigningAllowed          *bool
	ExtraArgs                   []string
}

// BuildParams are fully resolved build parameters. Workspace and Project
// may both be empty, in which case the caller auto-discovers one.
type BuildParams struct {
	Workspace                   string
	Project                     string
	Scheme                      string
	Configuration               string
	Destination                 string
	SDK                         string
	DerivedDataPath             string
	ClonedSourcePackagesDirPath string
	ResultBundlePath            string
	WorkingDirectory            string
	CodeSigningAllowed          bool
	ExtraArgs                   []string
}

// ResolveBuild resolves args against the loaded environment and defaults.
func (c *Config) ResolveBuild(args BuildArgs) (BuildParams, error) {
	return ResolveBuild(args, c.Env, c.Defaults)
}

// ResolveDerivedDataPath resolves the DerivedData directory for reading
// past logs. An empty result means "search every project".
func (c *Config) ResolveDerivedDataPath(arg string) string {
	return firstNonEmpty(arg, c.Env.Get(EnvDerivedDataPath), c.Defaults.DerivedDataPath)
}

// ResolveBuild applies the precedence explicit argument, environment,
// defaults file, hard-coded default. Scheme is checked before anything else
// is looked at.
func ResolveBuild(args BuildArgs, env Env, d Defaults) (BuildParams, error) {
	scheme := firstNonEmpty(args.Scheme, env.Get(EnvScheme), d.Scheme)
	if scheme == "" {
		return BuildParams{}, ErrMissingScheme
	}

	p := BuildParams{
		Scheme:                      scheme,
		Configuration:               firstNonEmpty(args.Configuration, env.Get(EnvConfiguration), d.Configuration, DefaultConfiguration),
		Destination:                 firstNonEmpty(args.Destination, env.Get(EnvDestination), d.Destination),
		SDK:                         firstNonEmpty(args.SDK, env.Get(EnvSDK), d.SDK),
		DerivedDataPath:             firstNonEmpty(args.DerivedDataPath, env.Get(EnvDerivedDataPath), d.DerivedDataPath),
		ClonedSourcePackagesDirPath: firstNonEmpty(args.ClonedSourcePackagesDirPath, env.Get(EnvClonedSourcePackagesDirPath), d.ClonedSourcePackagesDirPath),
		ResultBundlePath:            firstNonEmpty(args.ResultBundlePath, env.Get(EnvResultBundlePath), d.ResultBundlePath),
		WorkingDirectory:            firstNonEmpty(args.WorkingDirectory, env.Get(EnvWorkingDirectory), d.WorkingDirectory),
		CodeSigningAllowed:          resolveCodeSigning(args.CodeSigningAllowed, env, d.CodeSigningAllowed),
		ExtraArgs:                   resolveExtraArgs(args.ExtraArgs, env, d.ExtraArgs),
	}
	p.Workspace, p.Project = resolveContainer(args, env, d)
	return p, nil
}

// resolveContainer takes workspace and project from the first layer that
// names either, preferring the workspace within a layer.
func resolveContainer(args BuildArgs, env Env, d Defaults) (workspace, project string) {
	layers := [][2]string{
		{args.Workspace, args.Project},
		{env.Get(EnvWorkspace), env.Get(EnvProject)},
		{d.Workspace, d.Project},
	}
	for _, l := range layers {
		if l[0] != "" {
			return l[0], ""
		}
		if l[1] != "" {
			return "", l[1]
		}
	}
	return "", ""
}

func resolveCodeSigning(arg *bool, env Env, fallback *bool) bool {
	if arg != nil {
		return *arg
	}
	if v, ok := ParseBool(env.Get(EnvCodeSigningAllowed)); ok {
		return v
	}
	if fallback != nil {
		return *fallback
	}
	return false
}

func resolveExtraArgs(arg []string, env Env, fallback []string) []string {
	if len(arg) > 0 {
		return append([]string(nil), arg...)
	}
	if fields := strings.Fields(env.Get(EnvExtraArgs)); len(fields) > 0 {
		return fields
	}
	return append([]string(nil), fallback...)
}
