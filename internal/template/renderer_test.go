package template

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func demoContext() Context {
	return NewContext(Context{
		Name:          "demo",
		PackageName:   "demo",
		ClassName:     "Demo",
		Description:   "A demo project",
		PythonVersion: "3.12",
		Dependencies:  DependenciesFor(KindStandard),
	})
}

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fsys := fstest.MapFS{
			"greeting.tmpl": &fstest.MapFile{
				Data: []byte("Hello from {{.Name}}!\n"),
			},
		}
		r := NewRenderer(fsys)

		result, err := r.Render("greeting.tmpl", demoContext())
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(result) != "Hello from demo!\n" {
			t.Errorf("Render result = %q", result)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fsys := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{
				Data: []byte("{{.NoSuchField}}"),
			},
		}
		r := NewRenderer(fsys)

		_, err := r.Render("bad.tmpl", map[string]string{"Name": "demo"})
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("unexpanded_shell_token", func(t *testing.T) {
		fsys := fstest.MapFS{
			"env.tmpl": &fstest.MapFile{
				Data: []byte("path: ${HOME}/bin\n"),
			},
		}
		r := NewRenderer(fsys)

		_, err := r.Render("env.tmpl", demoContext())
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("github_matrix_expression_is_not_flagged", func(t *testing.T) {
		fsys := fstest.MapFS{
			"ci.tmpl": &fstest.MapFile{
				Data: []byte(`version: {{"${{ matrix.python-version }}"}}` + "\n"),
			},
		}
		r := NewRenderer(fsys)

		result, err := r.Render("ci.tmpl", demoContext())
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(result), "${{ matrix.python-version }}") {
			t.Errorf("Render result = %q", result)
		}
	})
}

func TestEmbeddedTemplates(t *testing.T) {
	r := NewRenderer(EmbeddedFS())

	t.Run("all_manifest_templates_render", func(t *testing.T) {
		ctx := demoContext()
		for _, kind := range []Kind{KindStandard, KindMinimal, KindWeb} {
			ctx.Dependencies = DependenciesFor(kind)
			for _, spec := range Files(kind, "demo") {
				if _, err := r.Render(spec.Template, ctx); err != nil {
					t.Errorf("kind %s: render %s: %v", kind, spec.Template, err)
				}
			}
		}
	})

	t.Run("rendering_is_deterministic", func(t *testing.T) {
		ctx := demoContext()
		first, err := r.Render("pyproject.toml.tmpl", ctx)
		if err != nil {
			t.Fatalf("first render: %v", err)
		}
		second, err := r.Render("pyproject.toml.tmpl", ctx)
		if err != nil {
			t.Fatalf("second render: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Error("identical context produced different output")
		}
	})

	t.Run("readme_references_layout", func(t *testing.T) {
		result, err := r.Render("README.md.tmpl", demoContext())
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		readme := string(result)
		for _, want := range []string{"# demo", "uv sync", "src/", "test_demo.py", "Python 3.12+"} {
			if !strings.Contains(readme, want) {
				t.Errorf("README missing %q", want)
			}
		}
	})
}
