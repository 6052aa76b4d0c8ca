package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// Fields is a partial update. Empty values mean "keep what is stored".
type Fields struct {
	Code       string
	Type       models.ProjectType
	AuthorName string
	Studio     string
	Role       string
	Contact    string
	Copyright  string
}

// IsZero reports whether no field is set.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// Store reads and writes project.json documents.
type Store struct {
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store.
func NewStore(logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MarkerPath returns the marker file location for root.
func MarkerPath(root string) string {
	return filepath.Join(root, defs.MarkerFile)
}

// DocumentPath returns the metadata document location for root.
func DocumentPath(root string) string {
	return filepath.Join(root, defs.MetadataFile)
}

// IsProjectRoot reports whether root carries the marker file.
func IsProjectRoot(root string) bool {
	info, err := os.Stat(MarkerPath(root))
	return err == nil && !info.IsDir()
}

// EnsureMarker creates the zero-byte marker if it does not exist yet.
func EnsureMarker(root string) error {
	p := MarkerPath(root)
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: create marker %s: %w", ErrWriteFailed, p, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close marker %s: %w", ErrWriteFailed, p, err)
	}
	return nil
}

// Read loads the document at root. It returns nil without error when the
// marker or the document is missing, or when the document is not valid JSON.
func (s *Store) Read(root string) (*Metadata, error) {
	if !IsProjectRoot(root) {
		return nil, nil
	}

	p := DocumentPath(root)
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFailed, p, err)
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		s.logger.Warn("ignoring malformed project metadata", "path", p, "error", err)
		return nil, nil
	}
	upgrade(&m)
	return &m, nil
}

// Write merges f over the stored document and writes the result, creating
// the marker and the document as needed. created_at is set only when the
// document is first created.
func (s *Store) Write(root string, f Fields) (*Metadata, error) {
	if err := EnsureMarker(root); err != nil {
		return nil, err
	}

	m, err := s.Read(root)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = &Metadata{Project: Project{
			SchemaVersion: SchemaVersion,
			CreatedAt:     s.now().Format(DateLayout),
		}}
	}

	merge(m, f)
	m.Project.CreatedWith = CreatedWith

	data, err := encode(m)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrWriteFailed, err)
	}
	p := DocumentPath(root)
	if err := atomicWrite(p, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailed, p, err)
	}

	s.logger.Debug("project metadata written", "path", p, "code", m.Project.Code)
	return m, nil
}

func merge(m *Metadata, f Fields) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&m.Project.Code, f.Code)
	set(&m.Project.Type, string(f.Type))
	set(&m.Author.Name, f.AuthorName)
	set(&m.Author.Studio, f.Studio)
	set(&m.Author.Role, f.Role)
	set(&m.Author.Contact, f.Contact)
	set(&m.Author.Copyright, f.Copyright)
}

// atomicWrite writes data to a temporary file in the same directory and
// renames it over path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".project-json-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, defs.FilePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
