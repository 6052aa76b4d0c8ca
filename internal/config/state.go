package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const stateFileName = "state.yaml"

// State is the session remembered between runs.
type State struct {
	Root        string `yaml:"root,omitempty"`
	ProjectType string `yaml:"project_type,omitempty"`
}

// StatePath returns the state file that sits next to configPath.
func StatePath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), stateFileName)
}

// LoadState reads the state file. A missing file yields an empty State.
func LoadState(path string) (State, error) {
	var st State
	if _, err := loadYAMLFile(path, &st); err != nil {
		return State{}, err
	}
	return st, nil
}

// SaveState writes st atomically.
func SaveState(path string, st State) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := atomicWrite(path, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
