package xcodebuild

import (
	"xcode-error-mcp/src/config"
)

// Container is the workspace or project passed to xcodebuild.
type Container struct {
	// Flag is "-workspace" or "-project".
	Flag string
	Path string
}

// Workspace returns a workspace container.
func Workspace(path string) Container { return Container{Flag: "-workspace", Path: path} }

// Project returns a project container.
func Project(path string) Container { return Container{Flag: "-project", Path: path} }

// ContainerFor picks the container named in p, or discovers one in
// p.WorkingDirectory (the process directory when empty).
func ContainerFor(p config.BuildParams) (Container, error) {
	switch {
	case p.Workspace != "":
		return Workspace(p.Workspace), nil
	case p.Project != "":
		return Project(p.Project), nil
	}
	return Discover(p.WorkingDirectory)
}

// BuildArgs assembles the xcodebuild argument vector for a build.
func BuildArgs(p config.BuildParams, c Container) []string {
	args := []string{
		c.Flag, c.Path,
		"-scheme", p.Scheme,
		"-configuration", p.Configuration,
	}

	optional := []struct {
		flag  string
		value string
	}{
		{"-destination", p.Destination},
		{"-sdk", p.SDK},
		{"-derivedDataPath", p.DerivedDataPath},
		{"-clonedSourcePackagesDirPath", p.ClonedSourcePackagesDirPath},
		{"-resultBundlePath", p.ResultBundlePath},
	}
	for _, o := range optional {
		if o.value != "" {
			args = append(args, o.flag, o.value)
		}
	}

	signing := "NO"
	if p.CodeSigningAllowed {
		signing = "YES"
	}
	args = append(args, "CODE_SIGNING_ALLOWED="+signing)
	args = append(args, p.ExtraArgs...)
	return append(args, "build")
}
