// Package config owns the WaterWise configuration file, the global
// logger, and the small JSON state stores (implemented suggestions, usage
// journal) that make up a user's session.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the config schema version written by this release.
const SchemaVersion = "1.0.0"

// schemaConstraint is the range of config schema versions this release
// can read. Configs outside the range are rejected rather than
// half-interpreted.
const schemaConstraint = ">= 1.0.0, < 2.0.0"

// ErrIncompatibleSchema indicates the config file's version is outside
// the supported range.
var ErrIncompatibleSchema = errors.New("unsupported config schema version")

// appDirName is the per-user and per-project state directory name.
const appDirName = ".waterwise"

// Config is the full WaterWise configuration.
type Config struct {
	// Version is the config schema version (semver).
	Version string `yaml:"version"`

	// Logging configures the global logger.
	Logging LoggingConfig `yaml:"logging"`

	// Tracker configures usage-tracking defaults.
	Tracker TrackerConfig `yaml:"tracker"`

	// Output configures rendering.
	Output OutputConfig `yaml:"output"`
}

// LoggingConfig selects log level and optional file output.
type LoggingConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `yaml:"level"`

	// File, when set, receives logs in addition to the console.
	File string `yaml:"file"`
}

// TrackerConfig holds usage-tracking defaults.
type TrackerConfig struct {
	// DefaultShowers seeds the showers counter when no flag is given.
	DefaultShowers int `yaml:"default_showers"`

	// DefaultBuckets seeds the buckets counter when no flag is given.
	DefaultBuckets int `yaml:"default_buckets"`

	// DefaultBottles seeds the bottles counter when no flag is given.
	DefaultBottles int `yaml:"default_bottles"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	// Format is the default output format (table or json).
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Logging: LoggingConfig{Level: "info"},
		Tracker: TrackerConfig{DefaultShowers: 1, DefaultBuckets: 3, DefaultBottles: 2},
		Output:  OutputConfig{Format: "table"},
	}
}

// UserDir returns the per-user state directory (~/.waterwise).
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// Load builds the effective configuration.
//
// It starts from the built-in defaults, merges the user config file on
// top if one exists, then a project-local .waterwise/config.yaml in the
// working directory, then an explicit override file if path is
// non-empty. Missing user and project configs are not errors; a missing
// explicit override is, since the user asked for it. Each loaded file's
// schema version is checked against the supported range.
func Load(path string) (*Config, error) {
	cfg := Default()

	userDir, err := UserDir()
	if err == nil {
		if err := mergeIfExists(cfg, filepath.Join(userDir, "config.yaml")); err != nil {
			return nil, err
		}
	}

	if err := mergeIfExists(cfg, filepath.Join(appDirName, "config.yaml")); err != nil {
		return nil, err
	}

	if path != "" {
		if err := mergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// mergeIfExists merges the file when present and skips it silently
// otherwise.
func mergeIfExists(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return mergeYAML(cfg, path)
}

// mergeYAML loads a YAML file and shallow-merges its top-level sections
// onto the target. Sections present in the overlay replace the target's
// section wholesale; absent sections are left unchanged.
func mergeYAML(target *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	if node, ok := overlay["version"]; ok {
		var version string
		if err := node.Decode(&version); err != nil {
			return fmt.Errorf("config file %s: decoding version: %w", path, err)
		}
		if err := checkSchemaVersion(version); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		target.Version = version
	}

	for key, node := range overlay {
		// Each section decodes into a fresh zero value so the overlay
		// replaces the section instead of merging into it.
		switch key {
		case "logging":
			var v LoggingConfig
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("config file %s: section %q: %w", path, key, err)
			}
			target.Logging = v
		case "tracker":
			var v TrackerConfig
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("config file %s: section %q: %w", path, key, err)
			}
			target.Tracker = v
		case "output":
			var v OutputConfig
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("config file %s: section %q: %w", path, key, err)
			}
			target.Output = v
		case "version":
			// Handled above.
		default:
			// Unknown top-level keys are ignored for forward compatibility.
		}
	}

	return nil
}

// checkSchemaVersion validates a config file's declared schema version
// against the supported range.
func checkSchemaVersion(version string) error {
	if version == "" {
		// Files written before versioning are treated as current.
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrIncompatibleSchema, version)
	}

	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrIncompatibleSchema, version, schemaConstraint)
	}

	return nil
}
