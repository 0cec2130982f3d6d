package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults are fallback build parameters read from a YAML file. They apply
// after explicit arguments and environment variables.
//
//	scheme: App
//	workspace: App.xcworkspace
//	destination: "platform=iOS Simulator,name=iPhone 16"
//	codeSigningAllowed: false
//	extraArgs: ["-quiet"]
type Defaults struct {
	Workspace                   string   `yaml:"workspace"`
	Project                     string   `yaml:"project"`
	Scheme                      string   `yaml:"scheme"`
	Configuration               string   `yaml:"configuration"`
	Destination                 string   `yaml:"destination"`
	SDK                         string   `yaml:"sdk"`
	DerivedDataPath             string   `yaml:"derivedDataPath"`
	ClonedSourcePackagesDirPath string   `yaml:"clonedSourcePackagesDirPath"`
	ResultBundlePath            string   `yaml:"resultBundlePath"`
	WorkingDirectory            string   `yaml:"workingDirectory"`
	CodeSigningAllowed          *bool    `yaml:"codeSigningAllowed"`
	ExtraArgs                   []string `yaml:"extraArgs"`
	XcodebuildPath              string   `yaml:"xcodebuildPath"`
}

// LoadDefaults reads a YAML defaults file. Unknown keys are rejected so a
// typo does not silently fall through to a hard-coded default.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}
	return ParseDefaults(data)
}

// ParseDefaults decodes YAML defaults. Empty input yields zero Defaults.
func ParseDefaults(data []byte) (*Defaults, error) {
	var d Defaults
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse defaults: %w", err)
	}
	return &d, nil
}
