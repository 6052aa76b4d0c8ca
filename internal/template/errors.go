// Package template renders the documents generated into a new project from
// embedded text/template sources. Rendering is strict: a missing key or a
// leftover placeholder is an error rather than silently empty output.
package template

import "errors"

var (
	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the data lacks a key the template uses.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates a placeholder survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")

	// ErrNoFrontMatter indicates a document without a YAML front matter block.
	ErrNoFrontMatter = errors.New("document has no front matter")
)
