package xcodebuild

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xcode-error-mcp/src/config"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name      string
		params    config.BuildParams
		container Container
		expected  []string
	}{
		{
			name:      "minimal",
			params:    config.BuildParams{Scheme: "App", Configuration: "Debug"},
			container: Workspace("/src/App.xcworkspace"),
			expected: []string{
				"-workspace", "/src/App.xcworkspace",
				"-scheme", "App",
				"-configuration", "Debug",
				"CODE_SIGNING_ALLOWED=NO",
				"build",
			},
		},
		{
			name: "everything",
			params: config.BuildParams{
				Scheme:                      "App",
				Configuration:               "Release",
				Destination:                 "platform=iOS Simulator,name=iPhone 16",
				SDK:                         "iphonesimulator",
				DerivedDataPath:             "/tmp/dd",
				ClonedSourcePackagesDirPath: "/tmp/spm",
				ResultBundlePath:            "/tmp/r.xcresult",
				CodeSigningAllowed:          true,
				ExtraArgs:                   []string{"-quiet", "ONLY_ACTIVE_ARCH=YES"},
			},
			container: Project("App.xcodeproj"),
			expected: []string{
				"-project", "App.xcodeproj",
				"-scheme", "App",
				"-configuration", "Release",
				"-destination", "platform=iOS Simulator,name=iPhone 16",
				"-sdk", "iphonesimulator",
				"-derivedDataPath", "/tmp/dd",
				"-clonedSourcePackagesDirPath", "/tmp/spm",
				"-resultBundlePath", "/tmp/r.xcresult",
				"CODE_SIGNING_ALLOWED=YES",
				"-quiet", "ONLY_ACTIVE_ARCH=YES",
				"build",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildArgs(tt.params, tt.container))
		})
	}
}

func TestContainerForPrefersExplicit(t *testing.T) {
	c, err := ContainerFor(config.BuildParams{Workspace: "W.xcworkspace", Project: "P.xcodeproj"})
	assert.NoError(t, err)
	assert.Equal(t, Workspace("W.xcworkspace"), c)

	c, err = ContainerFor(config.BuildParams{Project: "P.xcodeproj"})
	assert.NoError(t, err)
	assert.Equal(t, Project("P.xcodeproj"), c)
}
