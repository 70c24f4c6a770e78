package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the requested template does not exist,
	// either as a catalog entry or as an embedded template file.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates a template referenced a key absent
	// from the render context (strict mode).
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a
	// dynamic token that should have been expanded.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")
)
