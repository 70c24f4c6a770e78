package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	t.Run("missing_file_returns_builtin_defaults", func(t *testing.T) {
		d := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.yaml"))
		if d.PythonVersion != DefaultPythonVersion {
			t.Errorf("PythonVersion = %q, want %q", d.PythonVersion, DefaultPythonVersion)
		}
		if d.Template != DefaultTemplate {
			t.Errorf("Template = %q, want %q", d.Template, DefaultTemplate)
		}
		if d.Author != "" || d.Email != "" {
			t.Errorf("author/email not empty: %q / %q", d.Author, d.Email)
		}
	})

	t.Run("valid_file_overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "author: Ada Lovelace\nemail: ada@example.com\npython_version: \"3.13\"\ntemplate: web\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		d := LoadFrom(path)
		if d.Author != "Ada Lovelace" {
			t.Errorf("Author = %q", d.Author)
		}
		if d.Email != "ada@example.com" {
			t.Errorf("Email = %q", d.Email)
		}
		if d.PythonVersion != "3.13" {
			t.Errorf("PythonVersion = %q", d.PythonVersion)
		}
		if d.Template != "web" {
			t.Errorf("Template = %q", d.Template)
		}
	})

	t.Run("partial_file_keeps_builtin_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("author: Ada\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		d := LoadFrom(path)
		if d.Author != "Ada" {
			t.Errorf("Author = %q", d.Author)
		}
		if d.PythonVersion != DefaultPythonVersion {
			t.Errorf("PythonVersion = %q, want builtin default", d.PythonVersion)
		}
	})

	t.Run("malformed_file_returns_builtin_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(":\n  - not yaml ["), 0o644); err != nil {
			t.Fatal(err)
		}

		d := LoadFrom(path)
		if d.PythonVersion != DefaultPythonVersion || d.Author != "" {
			t.Errorf("malformed file did not fall back to defaults: %+v", d)
		}
	})
}

func TestPath(t *testing.T) {
	t.Run("xdg_config_home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

		path, err := Path()
		if err != nil {
			t.Fatalf("Path error: %v", err)
		}
		want := filepath.Join("/tmp/xdg", "pybake", "config.yaml")
		if path != want {
			t.Errorf("Path = %q, want %q", path, want)
		}
	})

	t.Run("home_fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		path, err := Path()
		if err != nil {
			t.Fatalf("Path error: %v", err)
		}
		if !strings.HasSuffix(path, filepath.Join(".config", "pybake", "config.yaml")) {
			t.Errorf("Path = %q", path)
		}
	})
}
