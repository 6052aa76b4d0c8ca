// Package naming parses, validates, and generates filenames that follow the
// studio naming grammar:
//
//	<scope>_<subject>_<task>_v<###>   (with task)
//	<subject>_v<###>                  (without task)
//
// Asset files and shot files use different task vocabularies; a shot-only
// task on an asset file is rejected with a dedicated error.
package naming

import "errors"

// Sentinel errors for filename validation. Callers match them with errors.Is;
// the returned errors wrap them with the offending name or task.
var (
	// ErrInvalidFilenameFormat indicates the name matches neither grammar.
	ErrInvalidFilenameFormat = errors.New("invalid filename format")

	// ErrMissingSubject indicates an asset name without a subject segment.
	ErrMissingSubject = errors.New("filename has no subject")

	// ErrForbiddenAssetTask indicates a shot-only task used on an asset file.
	ErrForbiddenAssetTask = errors.New("task is reserved for shot files")

	// ErrUnknownAssetTask indicates a task outside the asset vocabulary.
	ErrUnknownAssetTask = errors.New("unknown asset task")

	// ErrInvalidShotScope indicates a shot file whose scope is not "shot".
	ErrInvalidShotScope = errors.New("shot filename must start with scope \"shot\"")

	// ErrMissingShotTask indicates a shot file without a task segment.
	ErrMissingShotTask = errors.New("shot filename requires a task")

	// ErrUnknownShotTask indicates a task outside the shot vocabulary.
	ErrUnknownShotTask = errors.New("unknown shot task")

	// ErrIndeterminateDomain indicates no domain was given and none could be
	// inferred from the path.
	ErrIndeterminateDomain = errors.New("cannot determine naming domain")
)
