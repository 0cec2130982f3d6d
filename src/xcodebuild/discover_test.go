package xcodebuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcode-error-mcp/src/config"
)

func mkdirs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, n), 0o755))
	}
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected func(dir string) Container
	}{
		{
			name:    "single workspace",
			entries: []string{"App.xcworkspace", "App.xcodeproj"},
			expected: func(dir string) Container {
				return Workspace(filepath.Join(dir, "App.xcworkspace"))
			},
		},
		{
			name:    "single project",
			entries: []string{"App.xcodeproj", "Sources"},
			expected: func(dir string) Container {
				return Project(filepath.Join(dir, "App.xcodeproj"))
			},
		},
		{
			name:    "ambiguous workspaces fall back to single project",
			entries: []string{"A.xcworkspace", "B.xcworkspace", "App.xcodeproj"},
			expected: func(dir string) Container {
				return Project(filepath.Join(dir, "App.xcodeproj"))
			},
		},
		{
			name:    "hidden entries ignored",
			entries: []string{".tmp.xcworkspace", "App.xcodeproj"},
			expected: func(dir string) Container {
				return Project(filepath.Join(dir, "App.xcodeproj"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			mkdirs(t, dir, tt.entries...)

			c, err := Discover(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected(dir), c)
		})
	}
}

func TestDiscoverFailures(t *testing.T) {
	empty := t.TempDir()
	_, err := Discover(empty)
	assert.ErrorIs(t, err, ErrNoProject)

	ambiguous := t.TempDir()
	mkdirs(t, ambiguous, "A.xcodeproj", "B.xcodeproj")
	_, err = Discover(ambiguous)
	assert.ErrorIs(t, err, ErrNoProject)

	_, err = Discover(filepath.Join(empty, "missing"))
	assert.ErrorIs(t, err, ErrNoProject)
}

func TestContainerForDiscoversInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "Tool.xcodeproj")

	c, err := ContainerFor(config.BuildParams{WorkingDirectory: dir})
	require.NoError(t, err)
	assert.Equal(t, Project(filepath.Join(dir, "Tool.xcodeproj")), c)
}
