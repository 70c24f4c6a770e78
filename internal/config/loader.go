// Package config loads per-user defaults for pybake from an optional YAML
// file. A missing file yields the built-in defaults; a malformed file is
// reported with a warning and also yields the defaults, so the CLI never
// fails because of a bad defaults file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in default values.
const (
	DefaultPythonVersion = "3.12"
	DefaultTemplate      = "standard"
)

// configFileName is the defaults file name inside the pybake config directory.
const configFileName = "config.yaml"

// Defaults holds per-user default values applied to "pybake create" when
// the corresponding flags are unset.
type Defaults struct {
	Author        string `yaml:"author"`
	Email         string `yaml:"email"`
	PythonVersion string `yaml:"python_version"`
	Template      string `yaml:"template"`
}

// NewDefaults returns the built-in defaults.
func NewDefaults() *Defaults {
	return &Defaults{
		PythonVersion: DefaultPythonVersion,
		Template:      DefaultTemplate,
	}
}

// Path returns the location of the user defaults file:
// $XDG_CONFIG_HOME/pybake/config.yaml, falling back to
// ~/.config/pybake/config.yaml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pybake", configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pybake", configFileName), nil
}

// Load reads the user defaults file from its standard location.
func Load() *Defaults {
	path, err := Path()
	if err != nil {
		slog.Warn("defaults file location unknown, using built-in defaults", "error", err)
		return NewDefaults()
	}
	return LoadFrom(path)
}

// LoadFrom reads a defaults file from the given path. Missing file means
// built-in defaults; malformed YAML is skipped with a warning.
func LoadFrom(path string) *Defaults {
	defaults := NewDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("cannot read defaults file, using built-in defaults", "path", path, "error", err)
		}
		return defaults
	}

	var loaded Defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		slog.Warn("invalid defaults file, using built-in defaults", "path", path, "error", err)
		return defaults
	}

	if loaded.Author != "" {
		defaults.Author = loaded.Author
	}
	if loaded.Email != "" {
		defaults.Email = loaded.Email
	}
	if loaded.PythonVersion != "" {
		defaults.PythonVersion = loaded.PythonVersion
	}
	if loaded.Template != "" {
		defaults.Template = loaded.Template
	}

	return defaults
}
