package template

import "strings"

// Placeholder literals used when the project author is unknown.
const (
	DefaultAuthor = "Your Name"
	DefaultEmail  = "your.email@example.com"
)

// Context provides data for rendering project templates. All fields are
// exported for use with Go's text/template package.
type Context struct {
	// Project
	Name        string
	PackageName string
	ClassName   string
	Description string

	// Runtime
	PythonVersion string
	PythonTag     string // PythonVersion with dots stripped, e.g. "3.12" -> "312"

	// Author (placeholder literals when unknown)
	Author string
	Email  string

	// Runtime dependency list for the build manifest, per template kind.
	Dependencies []string
}

// NewContext fills derived and defaulted fields of a Context: the Python tag
// is computed from the version, and empty author/email fall back to the
// placeholder literals.
func NewContext(c Context) Context {
	if c.Author == "" {
		c.Author = DefaultAuthor
	}
	if c.Email == "" {
		c.Email = DefaultEmail
	}
	if c.PythonTag == "" {
		c.PythonTag = strings.ReplaceAll(c.PythonVersion, ".", "")
	}
	return c
}

// baseDependencies is the runtime dependency list shared by every kind.
var baseDependencies = []string{
	"beartype>=0.16.0",
}

// webDependencies extends the base list for the web template.
var webDependencies = []string{
	"beartype>=0.16.0",
	"fastapi>=0.110.0",
	"uvicorn>=0.29.0",
}

// DependenciesFor returns the runtime dependency list for the given kind.
func DependenciesFor(kind Kind) []string {
	src := baseDependencies
	if kind == KindWeb {
		src = webDependencies
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
