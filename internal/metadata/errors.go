// Package metadata reads and writes the project.json identity document that
// sits next to the .blender_project marker at a project root.
//
// Writes are read-merge-write without file locking: two writers racing on
// the same root can lose an update, and the last one wins. Callers are
// expected to serialize access to a root.
package metadata

import "errors"

var (
	// ErrWriteFailed indicates the marker or the document could not be written.
	ErrWriteFailed = errors.New("metadata write failed")

	// ErrReadFailed indicates the document exists but could not be read.
	// Malformed JSON is not reported with this error; it reads as absent.
	ErrReadFailed = errors.New("metadata read failed")
)
