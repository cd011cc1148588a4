package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !reflect.DeepEqual(cfg.IgnoredDirs, []string{"thirdparty", "misc", "__pycache__"}) {
		t.Errorf("IgnoredDirs = %v", cfg.IgnoredDirs)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{".cpp", ".h"}) {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if !reflect.DeepEqual(cfg.ExcludeSuffixes, []string{".gen.h"}) {
		t.Errorf("ExcludeSuffixes = %v", cfg.ExcludeSuffixes)
	}
	if cfg.MarkerFile != "icon.svg" {
		t.Errorf("MarkerFile = %q, want %q", cfg.MarkerFile, "icon.svg")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.IncludeCompat {
		t.Error("IncludeCompat = true, want false")
	}
	if !cfg.CountInformational {
		t.Error("CountInformational = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "signalscan.yaml")

	configContent := `ignored_dirs: [thirdparty, tests]
extensions: [".cpp", ".h", ".mm"]
marker_file: ""
log_level: debug
include_compat: true
count_informational: false
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.IgnoredDirs, []string{"thirdparty", "tests"}) {
		t.Errorf("IgnoredDirs = %v", cfg.IgnoredDirs)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{".cpp", ".h", ".mm"}) {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	// absent key keeps the default
	if !reflect.DeepEqual(cfg.ExcludeSuffixes, []string{".gen.h"}) {
		t.Errorf("ExcludeSuffixes = %v, want default", cfg.ExcludeSuffixes)
	}
	if cfg.MarkerFile != "" {
		t.Errorf("MarkerFile = %q, want empty", cfg.MarkerFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.IncludeCompat {
		t.Error("IncludeCompat = false, want true")
	}
	if cfg.CountInformational {
		t.Error("CountInformational = true, want false")
	}

	walk := cfg.WalkOptions()
	if !reflect.DeepEqual(walk.Extensions, cfg.Extensions) {
		t.Errorf("WalkOptions().Extensions = %v", walk.Extensions)
	}
	rep := cfg.ReportOptions()
	if !rep.IncludeCompat || rep.CountInformational {
		t.Errorf("ReportOptions() = %+v", rep)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/signalscan.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

// TestLoadConfigMalformed tests that invalid YAML is rejected
func TestLoadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "signalscan.yaml")
	if err := os.WriteFile(configPath, []byte("extensions: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("LoadConfig() expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("LoadConfig() error = %v", err)
	}
}

// TestMergeWithFlags tests that flags override config values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	level := "debug"
	marker := "project.godot"
	compat := true
	cfg.MergeWithFlags(&level, &marker, &compat, nil)

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.MarkerFile != "project.godot" {
		t.Errorf("MarkerFile = %q, want %q", cfg.MarkerFile, "project.godot")
	}
	if !cfg.IncludeCompat {
		t.Error("IncludeCompat = false, want true")
	}
	if !cfg.CountInformational {
		t.Error("nil flag should keep CountInformational default")
	}
}

// TestValidate tests configuration validation
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default",
			modify: func(c *Config) {},
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log_level",
		},
		{
			name:    "no extensions",
			modify:  func(c *Config) { c.Extensions = nil },
			wantErr: "extensions cannot be empty",
		},
		{
			name:    "empty extension",
			modify:  func(c *Config) { c.Extensions = []string{".cpp", ""} },
			wantErr: "empty suffix",
		},
		{
			name:    "empty exclude suffix",
			modify:  func(c *Config) { c.ExcludeSuffixes = []string{".gen.h", ""} },
			wantErr: "exclude_suffixes cannot contain an empty suffix",
		},
		{
			name:   "no exclude suffixes",
			modify: func(c *Config) { c.ExcludeSuffixes = nil },
		},
		{
			name:    "marker with path",
			modify:  func(c *Config) { c.MarkerFile = "editor/icon.svg" },
			wantErr: "marker_file must be a file name",
		},
		{
			name:   "empty marker allowed",
			modify: func(c *Config) { c.MarkerFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
