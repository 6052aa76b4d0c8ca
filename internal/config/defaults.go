package config

import "github.com/studio-scaffolder/scaffolder/pkg/models"

// Default values for configuration fields.
const (
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultBaselineTimeout = 120
)

// NewDefaultConfig returns a Config with every field at its default.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: NewDefaultDefaultsConfig(),
		Baseline: NewDefaultBaselineConfig(),
		System:   NewDefaultSystemConfig(),
	}
}

// NewDefaultDefaultsConfig returns the default project defaults.
func NewDefaultDefaultsConfig() DefaultsConfig {
	return DefaultsConfig{
		BasePath:    ".",
		ProjectType: string(models.ProjectTypeShortFilm),
	}
}

// NewDefaultBaselineConfig returns a baseline config without a command.
func NewDefaultBaselineConfig() BaselineConfig {
	return BaselineConfig{TimeoutSeconds: DefaultBaselineTimeout}
}

// NewDefaultSystemConfig returns the default system settings.
func NewDefaultSystemConfig() SystemConfig {
	return SystemConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}
