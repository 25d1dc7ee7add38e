// =============================================================================
// CSV Schedule Quoter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// CONFIGURATION FILE:
//   A single optional YAML file (config.yaml by default). Every field has a
//   default that reproduces the tool's zero-config behavior: scan the current
//   directory for *.csv files and quote the "schedule" column in place. A
//   missing config file is therefore not an error.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Optional: the tool is fully functional without a config file
//   - Defaulted: unset fields fall back to the reference behavior
//   - Validated: loaded values are checked before processing starts
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DISCOVERY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for tabular files.
	// Default: "." (the working directory, matching the original behavior)
	InputDir string `yaml:"input_dir"`

	// FilePattern is the glob pattern used to select files inside InputDir.
	// Default: "*.csv"
	// Patterns ending in .xlsx select workbook processing instead of CSV.
	FilePattern string `yaml:"file_pattern"`

	// =========================================================================
	// TRANSFORMATION SETTINGS
	// =========================================================================

	// Column is the name of the column whose cells are quoted.
	// Default: "schedule"
	Column string `yaml:"column"`

	// Trigger is the substring that marks a cell for quoting. A cell is
	// wrapped in literal double quotes only when it contains this substring.
	// Default: "["
	Trigger string `yaml:"trigger"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of files processed concurrently.
	// Default: 1 (fully sequential). Files are independent, so any value
	// above 1 is a safe throughput optimization.
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError determines whether the batch keeps going after a file
	// fails. When false the first failure halts the run; files already
	// written stay written, later files are left untouched.
	// Default: false
	ContinueOnError bool `yaml:"continue_on_error"`

	// =========================================================================
	// REPORTING SETTINGS
	// =========================================================================

	// ReportDir, when non-empty, is the directory where a plain-text run
	// report is written after each batch. Empty disables report files; the
	// console notices are always emitted either way.
	// Default: "" (disabled)
	ReportDir string `yaml:"report_dir"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file exists but cannot be read or parsed.
//
// A missing file is not an error: the defaults describe a complete,
// working configuration on their own.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: run entirely on defaults.
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.InputDir == "" {
		config.InputDir = "."
	}
	if config.FilePattern == "" {
		config.FilePattern = "*.csv"
	}
	if config.Column == "" {
		config.Column = "schedule"
	}
	if config.Trigger == "" {
		config.Trigger = "["
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 1
	}
}

// validate checks the loaded configuration.
func validate(config *Config) error {
	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	return checkInputDir(config.InputDir)
}

// checkInputDir verifies that the input directory exists and is a directory.
// A missing or unreadable directory is fatal for the whole run.
func checkInputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("input directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input directory %s is not a directory", dir)
	}
	return nil
}

// OverrideInputDir replaces the configured input directory, re-running the
// same existence check Load applied to the configured value. Callers that
// accept a directory override after loading must go through this so that a
// nonexistent directory surfaces as an error instead of an empty scan.
func (c *Config) OverrideInputDir(dir string) error {
	if err := checkInputDir(dir); err != nil {
		return err
	}
	c.InputDir = dir
	return nil
}
