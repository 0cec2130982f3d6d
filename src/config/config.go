// Package config resolves xcode-error-mcp settings from the process
// environment, an optional dotenv file and an optional YAML defaults file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvWorkspace                   = "XCODE_WORKSPACE"
	EnvProject                     = "XCODE_PROJECT"
	EnvScheme                      = "XCODE_SCHEME"
	EnvConfiguration               = "XCODE_CONFIGURATION"
	EnvDestination                 = "XCODE_DESTINATION"
	EnvSDK                         = "XCODE_SDK"
	EnvDerivedDataPath             = "XCODE_DERIVED_DATA_PATH"
	EnvClonedSourcePackagesDirPath = "XCODE_CLONED_SOURCE_PACKAGES_DIR_PATH"
	EnvResultBundlePath            = "XCODE_RESULT_BUNDLE_PATH"
	EnvWorkingDirectory            = "XCODE_WORKING_DIRECTORY"
	EnvCodeSigningAllowed          = "XCODE_CODE_SIGNING_ALLOWED"
	EnvExtraArgs                   = "XCODE_EXTRA_ARGS"
	EnvXcodebuildPath              = "XCODEBUILD_PATH"
	EnvDebug                       = "XCODE_ERROR_MCP_DEBUG"
)

// DefaultXcodebuildPath is used when nothing overrides the executable.
const DefaultXcodebuildPath = "/usr/bin/xcodebuild"

// Config holds the application configuration.
type Config struct {
	// Env is the environment snapshot taken at load time.
	Env Env

	// Defaults come from the YAML defaults file, if any.
	Defaults Defaults

	// XcodebuildPath is the build tool executable.
	XcodebuildPath string

	// Debug enables debug logging (XCODE_ERROR_MCP_DEBUG=1).
	Debug bool
}

// Options selects optional configuration sources.
type Options struct {
	// EnvFile is a dotenv file layered under the process environment.
	EnvFile string

	// DefaultsFile is a YAML file with fallback build parameters.
	DefaultsFile string
}

// Load builds a Config from the process environment and the given files.
func Load(opts Options) (*Config, error) {
	env, err := LoadEnv(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	var defaults Defaults
	if opts.DefaultsFile != "" {
		d, err := LoadDefaults(opts.DefaultsFile)
		if err != nil {
			return nil, err
		}
		defaults = *d
	}

	return New(env, defaults), nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load(Options{})
}

// New assembles a Config from an environment snapshot and defaults.
func New(env Env, defaults Defaults) *Config {
	path := firstNonEmpty(env.Get(EnvXcodebuildPath), defaults.XcodebuildPath, DefaultXcodebuildPath)
	return &Config{
		Env:            env,
		Defaults:       defaults,
		XcodebuildPath: path,
		Debug:          env.Get(EnvDebug) == "1",
	}
}

// Env is an immutable snapshot of environment variables.
type Env struct {
	vars map[string]string
}

// NewEnv returns a snapshot holding a copy of vars.
func NewEnv(vars map[string]string) Env {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Env{vars: cp}
}

// OSEnv snapshots the process environment.
func OSEnv() Env {
	return Env{vars: environMap(os.Environ())}
}

// LoadEnv snapshots the process environment layered over the dotenv file at
// path. Process variables win over file entries. An empty path skips the file.
func LoadEnv(path string) (Env, error) {
	process := OSEnv()
	if path == "" {
		return process, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return Env{}, fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range process.vars {
		vars[k] = v
	}
	return Env{vars: vars}, nil
}

func environMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// Get returns the value of key, or "" when unset.
func (e Env) Get(key string) string {
	return e.vars[key]
}

// Lookup returns the value of key and whether it is set.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// ParseBool reads the usual truthy/falsy spellings. Anything else, including
// an empty string, reports ok=false.
func ParseBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	}
	return false, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
