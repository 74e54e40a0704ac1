// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-ranker/internal/logger"
)

// Default paths used when neither a flag nor a config file sets them.
const (
	DefaultJob        = "data/job_description.txt"
	DefaultResumesDir = "data"
	DefaultFormat     = "text"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "pretty"
)

// Environment variables that override the config file.
const (
	EnvLogLevel  = "RESUME_RANKER_LOG_LEVEL"
	EnvLogFormat = "RESUME_RANKER_LOG_FORMAT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job        string `json:"job,omitempty"`         // Path to the job description
	ResumesDir string `json:"resumes_dir,omitempty"` // Directory of candidate resumes
	Vocabulary string `json:"vocabulary,omitempty"`  // Optional YAML skill vocabulary

	// Output
	Format    string `json:"format,omitempty" validate:"omitempty,oneof=text json"`
	Top       int    `json:"top,omitempty" validate:"gte=0"` // Show only the top N candidates (0 = all)
	// Diagnostic blocks and the self-match line are printed unless disabled
	Quiet       bool `json:"quiet,omitempty"`
	NoSelfCheck bool `json:"no_self_check,omitempty"`

	// MetricsFile receives Prometheus text-format run metrics when set
	MetricsFile string `json:"metrics_file,omitempty"`

	// Behavior
	Workers   int    `json:"workers,omitempty" validate:"gte=0,lte=64"`
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=pretty json"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Job:        DefaultJob,
		ResumesDir: DefaultResumesDir,
		Format:     DefaultFormat,
		Workers:    1,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check that the job file exists; a missing reference is
// reported by the ranking run itself.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.ResumesDir == "" {
		result.ResumesDir = defaults.ResumesDir
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.MetricsFile == "" {
		result.MetricsFile = defaults.MetricsFile
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Top == 0 {
		result.Top = defaults.Top
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides logging settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
}

// Diagnostics reports whether per-document diagnostic blocks are printed.
func (c *Config) Diagnostics() bool {
	return !c.Quiet
}

// SelfCheck reports whether the job description is scored against itself.
func (c *Config) SelfCheck() bool {
	return !c.NoSelfCheck
}

// Logging returns the logger configuration.
func (c *Config) Logging() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}
