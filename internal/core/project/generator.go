package project

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pybake-dev/pybake/internal/template"
)

// Generator materializes a project on disk: it creates the directory
// skeleton and writes every rendered file from the template manifest.
type Generator struct {
	config   Config
	renderer template.Renderer
}

// NewGenerator creates a Generator for the given validated Config, rendering
// from the embedded template filesystem.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config:   config,
		renderer: template.NewRenderer(template.EmbeddedFS()),
	}
}

// NewGeneratorWithRenderer creates a Generator with a custom Renderer.
// Tests use this with a testing/fstest.MapFS-backed renderer.
func NewGeneratorWithRenderer(config Config, r template.Renderer) *Generator {
	return &Generator{config: config, renderer: r}
}

// Create generates the complete project under rootPath. The root and any
// missing parents are created; existing files at generated paths are
// overwritten (last-write-wins — overwrite gating is the caller's job).
// Filesystem errors propagate to the caller; files written before a failure
// stay on disk, there is no rollback.
func (g *Generator) Create(ctx context.Context, rootPath string) error {
	rootPath = filepath.Clean(rootPath)

	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return fmt.Errorf("create project root %q: %w", rootPath, err)
	}

	if err := g.createDirectories(rootPath); err != nil {
		return err
	}
	return g.writeFiles(ctx, rootPath)
}

// createDirectories builds the fixed directory skeleton under rootPath.
func (g *Generator) createDirectories(rootPath string) error {
	for _, dir := range template.Directories(g.config.PackageName()) {
		path := filepath.Join(rootPath, filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", path, err)
		}
	}
	return nil
}

// writeFiles renders every manifest entry for the configured template kind
// and writes it under rootPath.
func (g *Generator) writeFiles(ctx context.Context, rootPath string) error {
	tmplCtx := template.NewContext(template.Context{
		Name:          g.config.Name,
		PackageName:   g.config.PackageName(),
		ClassName:     g.config.ClassName(),
		Description:   g.config.Description,
		PythonVersion: g.config.PythonVersion,
		Author:        g.config.Author,
		Email:         g.config.Email,
		Dependencies:  template.DependenciesFor(g.config.Template),
	})

	for _, spec := range template.Files(g.config.Template, g.config.PackageName()) {
		// Check context cancellation before each file
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		relPath := spec.RelPath()
		if err := validateDestPath(rootPath, relPath); err != nil {
			return err
		}

		content, err := g.renderer.Render(spec.Template, tmplCtx)
		if err != nil {
			return fmt.Errorf("render %q: %w", relPath, err)
		}

		destPath := filepath.Join(rootPath, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("create directory for %q: %w", relPath, err)
		}
		if err := os.WriteFile(destPath, content, fs.FileMode(0o644)); err != nil {
			return fmt.Errorf("write %q: %w", destPath, err)
		}
		slog.Debug("generated file", "path", relPath, "bytes", len(content))
	}

	return nil
}

// validateDestPath ensures a generated file path does not escape rootPath.
func validateDestPath(rootPath, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absRoot, cleaned)
	if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrPathTraversal, relPath)
	}

	return nil
}
