// Package template holds the project template catalog, the strict content
// renderer, and the per-template file manifests consumed by the project
// generator. Template files are embedded at build time; rendering them with
// an identical Context always yields byte-identical output.
package template

import "fmt"

// Kind identifies a project template in the catalog.
type Kind string

// Available template kinds, in catalog order.
const (
	KindStandard Kind = "standard"
	KindMinimal  Kind = "minimal"
	KindWeb      Kind = "web"
)

// Entry describes one catalog template. Entries are static metadata: the
// kind additionally selects the file manifest via Files and the runtime
// dependency list via Dependencies.
type Entry struct {
	Kind        Kind
	Name        string
	Description string
	Features    []string
}

// catalog is the fixed, ordered set of project templates.
var catalog = []Entry{
	{
		Kind:        KindStandard,
		Name:        "Standard Python Project",
		Description: "Complete Python project with all modern tools",
		Features: []string{
			"uv for dependency management",
			"pyright for static analysis",
			"ruff for linting and formatting",
			"beartype for runtime type checking",
			"pytest for testing",
			"pre-commit for git hooks",
			"GitHub Actions for CI/CD",
		},
	},
	{
		Kind:        KindMinimal,
		Name:        "Minimal Python Project",
		Description: "Basic Python project with essential tools",
		Features: []string{
			"uv for dependency management",
			"ruff for linting and formatting",
			"pytest for testing",
		},
	},
	{
		Kind:        KindWeb,
		Name:        "Web Application",
		Description: "Python web application template",
		Features: []string{
			"FastAPI web framework",
			"uv for dependency management",
			"pyright for static analysis",
			"ruff for linting and formatting",
			"beartype for runtime type checking",
			"pytest for testing",
			"pre-commit for git hooks",
			"GitHub Actions for CI/CD",
		},
	},
}

// List returns the catalog entries in their fixed order. The returned slice
// is a copy; callers may not mutate catalog state through it.
func List() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the catalog entry for the given kind, or an error wrapping
// ErrTemplateNotFound when the kind is not in the catalog.
func Get(kind Kind) (Entry, error) {
	for _, e := range catalog {
		if e.Kind == kind {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, kind)
}

// IsValidKind reports whether kind names a catalog template.
func IsValidKind(kind Kind) bool {
	_, err := Get(kind)
	return err == nil
}
