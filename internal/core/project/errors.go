// Package project implements the core domain logic for the "pybake create"
// CLI command: the validated project configuration and the generator that
// materializes the directory skeleton and rendered files on disk.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidConfig indicates a required configuration field is empty.
	ErrInvalidConfig = errors.New("invalid project configuration")

	// ErrPathTraversal indicates a generated file path would escape the
	// project root.
	ErrPathTraversal = errors.New("path escapes project root")
)
