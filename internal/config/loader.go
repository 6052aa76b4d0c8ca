package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "SCAFFOLDER_CONFIG"

// Environment variables that override file values.
const (
	EnvLogLevel       = "SCAFFOLDER_LOG_LEVEL"
	EnvLogFormat      = "SCAFFOLDER_LOG_FORMAT"
	EnvNoColor        = "SCAFFOLDER_NO_COLOR"
	EnvNonInteractive = "SCAFFOLDER_NON_INTERACTIVE"
)

const (
	appDir         = "scaffolder"
	configFileName = "config.yaml"
)

// DefaultPath returns $SCAFFOLDER_CONFIG, or config.yaml in the per-user
// configuration directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// loadYAMLFile reads path and unmarshals it into target. Returns (true, nil)
// if the file was found and parsed, (false, nil) if the file does not exist,
// or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", filepath.Base(path), ErrInvalidYAML, err)
	}

	return true, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.System.LogLevel = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.System.LogFormat = format
	}
	if noColor := os.Getenv(EnvNoColor); noColor == "true" || noColor == "1" {
		cfg.System.NoColor = true
	}
	if ni := os.Getenv(EnvNonInteractive); ni == "true" || ni == "1" {
		cfg.System.NonInteractive = true
	}
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".scaffolder-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
