package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

//go:embed files
var embeddedFS embed.FS

// EmbeddedFS returns the template filesystem baked into the binary,
// rooted at the template directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedFS, "files")
	if err != nil {
		panic(fmt.Sprintf("embedded template root missing: %v", err))
	}
	return sub
}

// unexpandedTokenPattern detects leftover dynamic tokens in rendered output:
// ${VAR} and {{.Field}} forms that survived rendering point at a template
// authoring mistake.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing filesystem and
	// executes it with the given data. Returns ErrMissingTemplateKey when
	// the data lacks a referenced key and ErrUnexpandedToken when dynamic
	// tokens remain after rendering.
	Render(name string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from EmbeddedFS; in tests use
// testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(name string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), name)
	}

	return result, nil
}
