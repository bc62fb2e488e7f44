// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HistoryConfig holds settings for the conversion history ledger.
type HistoryConfig struct {
	// Enabled records every successful conversion when true.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding history.db and its exports.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of entries listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups the settings read from timeconv.yaml and TIMECONV_* variables.
type Config struct {
	// Format is the default output format: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	// DefaultYears is converted when no input is given (default "60").
	DefaultYears string `json:"default_years" yaml:"default_years" mapstructure:"default_years"`

	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
}
