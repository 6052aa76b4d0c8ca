package studio

// Host is the authoring application the facade runs alongside. The core
// only needs the open document's path and the ability to save and reopen it.
type Host interface {
	// CurrentDocumentPath returns the open document, or "" when unsaved.
	CurrentDocumentPath() string

	// SaveDocument saves the open document in place.
	SaveDocument() error

	// SaveDocumentAs saves the open document to path and makes it current.
	SaveDocumentAs(path string) error

	// OpenDocument opens path, replacing the current document.
	OpenDocument(path string) error
}
