package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/pybake-dev/pybake/internal/template"
)

func TestTemplatesCommand(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		out := newTestDeps(t)

		if err := execute(t, "templates"); err != nil {
			t.Fatalf("templates error: %v", err)
		}

		for _, want := range []string{"standard", "minimal", "web"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("listing missing %q:\n%s", want, out.String())
			}
		}
	})

	t.Run("show_standard", func(t *testing.T) {
		out := newTestDeps(t)

		if err := execute(t, "templates", "show", "standard"); err != nil {
			t.Fatalf("templates show error: %v", err)
		}
		if !strings.Contains(out.String(), "Standard Python Project") {
			t.Errorf("detail view missing template name:\n%s", out.String())
		}
	})

	t.Run("show_unknown", func(t *testing.T) {
		newTestDeps(t)

		err := execute(t, "templates", "show", "nonexistent")
		if !errors.Is(err, template.ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})
}

func TestInfoCommand(t *testing.T) {
	out := newTestDeps(t)

	if err := execute(t, "info"); err != nil {
		t.Fatalf("info error: %v", err)
	}
	if !strings.Contains(out.String(), "pybake create <name>") {
		t.Errorf("info output incomplete:\n%s", out.String())
	}
}
