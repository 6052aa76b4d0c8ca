package cli

import (
	"fmt"
	"os"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
)

// fileHost stands in for the authoring application on the command line.
// Its open document is a file named by a flag; saving copies that file.
type fileHost struct {
	path string
}

func (h *fileHost) CurrentDocumentPath() string {
	return h.path
}

// SaveDocument is a no-op: the document already lives on disk.
func (h *fileHost) SaveDocument() error {
	if _, err := os.Stat(h.path); err != nil {
		return fmt.Errorf("document %s: %w", h.path, err)
	}
	return nil
}

// SaveDocumentAs copies the document to path, replacing any seed file
// there, and makes the copy current.
func (h *fileHost) SaveDocumentAs(path string) error {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	h.path = path
	return nil
}

func (h *fileHost) OpenDocument(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	h.path = path
	return nil
}
