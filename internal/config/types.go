package config

// Config is the complete user configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Identity IdentityConfig `yaml:"identity"`
	Baseline BaselineConfig `yaml:"baseline"`
	System   SystemConfig   `yaml:"system"`
}

// DefaultsConfig supplies values for init-project flags left empty.
type DefaultsConfig struct {
	BasePath    string `yaml:"base_path"`
	ProjectType string `yaml:"project_type"`
}

// IdentityConfig is the artist identity written into new projects.
type IdentityConfig struct {
	AuthorName string `yaml:"author_name"`
	Studio     string `yaml:"studio"`
	Role       string `yaml:"role"`
	Contact    string `yaml:"contact"`
	Copyright  string `yaml:"copyright"`
}

// IsZero reports whether no identity field is set.
func (c IdentityConfig) IsZero() bool {
	return c == IdentityConfig{}
}

// BaselineConfig configures the external command that writes baseline
// documents. An empty Command selects empty placeholder files.
type BaselineConfig struct {
	Command        string   `yaml:"command"`
	Args           []string `yaml:"args"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

// SystemConfig holds logging and terminal preferences.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}
