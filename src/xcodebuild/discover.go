package xcodebuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoProject is returned when discovery finds no unambiguous workspace or
// project.
var ErrNoProject = errors.New("no unambiguous .xcworkspace or .xcodeproj")

// Discover looks in dir (the process directory when empty) for exactly one
// .xcworkspace, else exactly one .xcodeproj. Hidden entries are ignored.
func Discover(dir string) (Container, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Container{}, fmt.Errorf("%w: %v", ErrNoProject, err)
		}
		dir = cwd
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Container{}, fmt.Errorf("%w: %v", ErrNoProject, err)
	}

	var workspaces, projects []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		switch filepath.Ext(name) {
		case ".xcworkspace":
			workspaces = append(workspaces, filepath.Join(dir, name))
		case ".xcodeproj":
			projects = append(projects, filepath.Join(dir, name))
		}
	}

	if len(workspaces) == 1 {
		return Workspace(workspaces[0]), nil
	}
	if len(projects) == 1 {
		return Project(projects[0]), nil
	}
	return Container{}, fmt.Errorf("%w in %s (%d workspaces, %d projects)", ErrNoProject, dir, len(workspaces), len(projects))
}
