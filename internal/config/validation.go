package config

import (
	"slices"

	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks cfg and returns *ValidationErrors listing every problem.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if !slices.Contains(validLogLevels, cfg.System.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: "must be one of: debug, info, warn, error",
			Value:   cfg.System.LogLevel,
			Wrapped: ErrInvalidLogLevel,
		})
	}
	if !slices.Contains(validLogFormats, cfg.System.LogFormat) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: "must be one of: text, json",
			Value:   cfg.System.LogFormat,
			Wrapped: ErrInvalidLogFormat,
		})
	}
	if pt := cfg.Defaults.ProjectType; pt != "" {
		if _, err := models.ParseProjectType(pt); err != nil {
			errs = append(errs, ValidationError{
				Field:   "defaults.project_type",
				Message: err.Error(),
				Value:   pt,
				Wrapped: ErrInvalidProjectType,
			})
		}
	}
	if cfg.Baseline.TimeoutSeconds < 0 {
		errs = append(errs, ValidationError{
			Field:   "baseline.timeout_seconds",
			Message: "must not be negative",
			Value:   cfg.Baseline.TimeoutSeconds,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
