// Package config provides configuration loading and management.
package config

// QualityConfig contains settings for the lint tool pass.
type QualityConfig struct {
	// Disabled lists quality tools to skip by name (e.g. "pylint").
	Disabled []string `json:"disabled,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the djbake CLI configuration.
// Loaded from ~/.djbake/config.yaml with environment overrides.
type Config struct {
	// Matrix is a YAML file of extra parameter variants merged into the
	// built-in verification matrix.
	// Env: DJBAKE_MATRIX
	Matrix string `json:"matrix,omitempty"`

	// Keep retains baked project trees instead of removing them after
	// verification.
	// Env: DJBAKE_KEEP
	Keep bool `json:"keep,omitempty"`

	// Quality contains settings for the lint tool pass.
	Quality QualityConfig `json:"quality,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{}
}
