package config

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// @MX:ANCHOR: [AUTO] every command reads its configuration through the Manager built in deps.go.
// Manager provides thread-safe access to the configuration file.
// It must be initialized via Load() before use.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	path   string
	found  bool
}

// NewManager creates a Manager in uninitialized state.
func NewManager() *Manager {
	return &Manager{}
}

// Load reads the configuration at path, falling back to defaults for a
// missing file or missing fields, then applies environment overrides and
// validates the result.
func (m *Manager) Load(path string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := NewDefaultConfig()
	found, err := loadYAMLFile(path, cfg)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.path = path
	m.found = found
	return m.cloneLocked(), nil
}

// Get returns a copy of the current configuration, or nil before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return nil
	}
	return m.cloneLocked()
}

// Path returns the file the configuration was loaded from.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Exists reports whether Load found a file on disk.
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.found
}

// Set validates cfg and makes it current without saving.
func (m *Manager) Set(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *cfg
	c.Baseline.Args = append([]string(nil), cfg.Baseline.Args...)
	m.config = &c
	return nil
}

// Save writes the current configuration to its path atomically.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrNotInitialized
	}
	data, err := Marshal(m.config)
	if err != nil {
		return err
	}
	if err := atomicWrite(m.path, data); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	m.found = true
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

func (m *Manager) cloneLocked() *Config {
	c := *m.config
	c.Baseline.Args = append([]string(nil), m.config.Baseline.Args...)
	return &c
}
