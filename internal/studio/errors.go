// Package studio is the operations facade used by the command line and by
// host integrations. It composes the schema registry, naming grammar,
// metadata store, root detector and structure generator, and owns the
// session that remembers the last project worked on.
package studio

import "errors"

var (
	// ErrNoHostDocument indicates an operation that needs the host's current
	// document was called without a host or with an unsaved document.
	ErrNoHostDocument = errors.New("no current document")

	// ErrNotInAsset indicates the current document is not inside an asset directory.
	ErrNotInAsset = errors.New("document is not inside an asset")
)
