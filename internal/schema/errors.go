// Package schema holds the declarative directory templates for projects,
// assets and shots. The definition is embedded in the binary and validated
// once when loaded; the resulting Registry is read-only.
package schema

import "errors"

var (
	// ErrUnknownSchemaKey indicates a lookup for a project type, asset kind
	// or shot key that the registry does not define.
	ErrUnknownSchemaKey = errors.New("unknown schema key")

	// ErrInvalidSchema indicates a definition that fails load-time validation.
	ErrInvalidSchema = errors.New("invalid schema definition")
)
