package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/signalscan/internal/fileutil"
	"github.com/harrison/signalscan/internal/logger"
	"github.com/harrison/signalscan/internal/report"
	"gopkg.in/yaml.v3"
)

// DefaultMarkerFile identifies the top level of a Godot checkout.
const DefaultMarkerFile = "icon.svg"

// Config represents signalscan configuration options
type Config struct {
	// IgnoredDirs are entry names skipped during the walk
	IgnoredDirs []string `yaml:"ignored_dirs"`

	// Extensions are the source file suffixes that get classified
	Extensions []string `yaml:"extensions"`

	// ExcludeSuffixes drop generated files whose extension otherwise matches
	ExcludeSuffixes []string `yaml:"exclude_suffixes"`

	// MarkerFile must exist at the top level of the scanned root
	MarkerFile string `yaml:"marker_file"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// IncludeCompat folds legacy compat connections into the connected set
	IncludeCompat bool `yaml:"include_compat"`

	// CountInformational counts emitted-and-added-but-unconnected signals as failures
	CountInformational bool `yaml:"count_informational"`
}

// DefaultConfig returns a Config matching the stock checker behavior
func DefaultConfig() *Config {
	walk := fileutil.DefaultWalkOptions()
	rep := report.DefaultOptions()
	return &Config{
		IgnoredDirs:        walk.IgnoreDirs,
		Extensions:         walk.Extensions,
		ExcludeSuffixes:    walk.ExcludeSuffixes,
		MarkerFile:         DefaultMarkerFile,
		LogLevel:           "warn",
		IncludeCompat:      rep.IncludeCompat,
		CountInformational: rep.CountInformational,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from zero values so defaults survive
	type yamlConfig struct {
		IgnoredDirs        *[]string `yaml:"ignored_dirs"`
		Extensions         *[]string `yaml:"extensions"`
		ExcludeSuffixes    *[]string `yaml:"exclude_suffixes"`
		MarkerFile         *string   `yaml:"marker_file"`
		LogLevel           string    `yaml:"log_level"`
		IncludeCompat      *bool     `yaml:"include_compat"`
		CountInformational *bool     `yaml:"count_informational"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.IgnoredDirs != nil {
		cfg.IgnoredDirs = *yamlCfg.IgnoredDirs
	}
	if yamlCfg.Extensions != nil {
		cfg.Extensions = *yamlCfg.Extensions
	}
	if yamlCfg.ExcludeSuffixes != nil {
		cfg.ExcludeSuffixes = *yamlCfg.ExcludeSuffixes
	}
	// An explicit empty marker disables the project root check
	if yamlCfg.MarkerFile != nil {
		cfg.MarkerFile = *yamlCfg.MarkerFile
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.IncludeCompat != nil {
		cfg.IncludeCompat = *yamlCfg.IncludeCompat
	}
	if yamlCfg.CountInformational != nil {
		cfg.CountInformational = *yamlCfg.CountInformational
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, markerFile *string, includeCompat *bool, countInformational *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if markerFile != nil {
		c.MarkerFile = *markerFile
	}
	if includeCompat != nil {
		c.IncludeCompat = *includeCompat
	}
	if countInformational != nil {
		c.CountInformational = *countInformational
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions cannot be empty")
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			return fmt.Errorf("extensions cannot contain an empty suffix")
		}
	}
	for _, suffix := range c.ExcludeSuffixes {
		if suffix == "" {
			return fmt.Errorf("exclude_suffixes cannot contain an empty suffix")
		}
	}

	if strings.ContainsAny(c.MarkerFile, `/\`) {
		return fmt.Errorf("marker_file must be a file name, got %q", c.MarkerFile)
	}

	return nil
}

// WalkOptions returns the tree walker settings described by the configuration
func (c *Config) WalkOptions() fileutil.WalkOptions {
	return fileutil.WalkOptions{
		IgnoreDirs:      c.IgnoredDirs,
		Extensions:      c.Extensions,
		ExcludeSuffixes: c.ExcludeSuffixes,
	}
}

// ReportOptions returns the cross-reference settings described by the configuration
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		IncludeCompat:      c.IncludeCompat,
		CountInformational: c.CountInformational,
	}
}
