package project

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pybake-dev/pybake/internal/template"
)

// Config describes the project to generate. It is validated once by
// NewConfig and treated as immutable afterwards; the derived name accessors
// are pure and side-effect free.
type Config struct {
	Name          string
	PythonVersion string
	Description   string
	Author        string // optional
	Email         string // optional
	Template      template.Kind
}

// DefaultDescription returns the description used when the caller supplies
// none: a sentence derived from the project name.
func DefaultDescription(name string) string {
	return fmt.Sprintf("A Python project called %s", name)
}

// NewConfig validates and returns a project Config. An empty template kind
// defaults to the standard template. Empty name, Python version, or
// description fails with an error wrapping ErrInvalidConfig; callers that
// want a derived description pass DefaultDescription themselves.
func NewConfig(cfg Config) (Config, error) {
	if cfg.Name == "" {
		return Config{}, fmt.Errorf("%w: project name cannot be empty", ErrInvalidConfig)
	}
	if cfg.PythonVersion == "" {
		return Config{}, fmt.Errorf("%w: python version cannot be empty", ErrInvalidConfig)
	}
	if cfg.Description == "" {
		return Config{}, fmt.Errorf("%w: project description cannot be empty", ErrInvalidConfig)
	}
	if cfg.Template == "" {
		cfg.Template = template.KindStandard
	}
	if !template.IsValidKind(cfg.Template) {
		return Config{}, fmt.Errorf("%w: unknown template %q", ErrInvalidConfig, cfg.Template)
	}
	return cfg, nil
}

// PackageName returns the import-safe package name: "-" and spaces become
// "_", everything lowercased.
func (c Config) PackageName() string {
	name := strings.ReplaceAll(c.Name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}

// ClassName returns the PascalCase form of the project name: split on "-"
// and spaces, each word capitalized, concatenated.
func (c Config) ClassName() string {
	words := strings.FieldsFunc(c.Name, func(r rune) bool {
		return r == '-' || r == ' '
	})
	// cases.Caser carries transform state, so build one per call.
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(strings.ToLower(w)))
	}
	return b.String()
}
