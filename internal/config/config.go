// Package config provides configuration management for syslang.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (SYSLANG_*)
// 3. Project config (.syslang/config.yaml in cwd)
// 4. Home config (~/.syslang/config.yaml)
// 5. Defaults
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all syslang configuration.
type Config struct {
	// Output controls the default report format (text, json).
	Output string `yaml:"output" json:"output"`

	// LibraryDir overrides the embedded reference library with on-disk
	// catalogs. Empty means use the embedded library.
	LibraryDir string `yaml:"library_dir" json:"library_dir"`

	// ValidateModels enables schema validation of user model documents
	// during check. Violations are reported, never fatal.
	ValidateModels bool `yaml:"validate_models" json:"validate_models"`

	// ValidateModelsSet tracks whether ValidateModels was explicitly set,
	// distinguishing "not set" from "explicitly set to false".
	ValidateModelsSet bool `yaml:"-" json:"-"`

	// Verbose enables verbose diagnostics.
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// Default config values.
const defaultOutput = "text"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output:         defaultOutput,
		ValidateModels: true,
	}
}

// Load loads configuration with proper precedence.
// Priority: flags > env > project > home > defaults.
func Load(flagOverrides *Config) (*Config, error) {
	cfg := Default()

	homeConfig, _ := loadFromPath(homeConfigPath())
	if homeConfig != nil {
		cfg = merge(cfg, homeConfig)
	}

	projectConfig, _ := loadFromPath(projectConfigPath())
	if projectConfig != nil {
		cfg = merge(cfg, projectConfig)
	}

	cfg = applyEnv(cfg)

	if flagOverrides != nil {
		cfg = merge(cfg, flagOverrides)
	}

	return cfg, nil
}

// homeConfigPath returns the home config path.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".syslang", "config.yaml")
}

// projectConfigPath returns the project config path.
func projectConfigPath() string {
	if override := strings.TrimSpace(os.Getenv("SYSLANG_CONFIG")); override != "" {
		return override
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".syslang", "config.yaml")
}

// loadFromPath loads config from a YAML file.
func loadFromPath(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if strings.Contains(string(data), "validate_models:") {
		cfg.ValidateModelsSet = true
	}

	return &cfg, nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("SYSLANG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("SYSLANG_LIBRARY_DIR"); v != "" {
		cfg.LibraryDir = v
	}
	if v := os.Getenv("SYSLANG_VALIDATE_MODELS"); v == "false" || v == "0" {
		cfg.ValidateModels = false
	}
	if v := os.Getenv("SYSLANG_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	return cfg
}

// mergeStr overwrites dst with src when src is non-empty.
func mergeStr(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// merge merges src into dst, with src values taking precedence.
func merge(dst, src *Config) *Config {
	mergeStr(&dst.Output, src.Output)
	mergeStr(&dst.LibraryDir, src.LibraryDir)
	if src.Verbose {
		dst.Verbose = true
	}
	if src.ValidateModelsSet {
		dst.ValidateModels = src.ValidateModels
		dst.ValidateModelsSet = true
	}
	return dst
}
