package studio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/internal/metadata"
	"github.com/studio-scaffolder/scaffolder/internal/naming"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// Service exposes the studio operations.
type Service struct {
	generator *project.Generator
	detector  *project.Detector
	store     *metadata.Store
	session   *project.Session
	host      Host
	logger    *slog.Logger
}

// NewService creates a Service. session may be nil for a fresh one; host
// may be nil when running headless.
func NewService(generator *project.Generator, store *metadata.Store, session *project.Session, host Host, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if store == nil {
		store = metadata.NewStore(logger)
	}
	if session == nil {
		session = project.NewSession("", "")
	}
	return &Service{
		generator: generator,
		detector:  project.NewDetector(session, logger),
		store:     store,
		session:   session,
		host:      host,
		logger:    logger,
	}
}

// Session returns the session the service remembers roots in.
func (s *Service) Session() *project.Session {
	return s.session
}

// InitProject creates a project and remembers it.
func (s *Service) InitProject(opts project.ProjectOptions) (*project.ProjectResult, error) {
	res, err := s.generator.CreateProject(opts)
	if err != nil {
		return nil, err
	}
	s.session.Remember(res.Dir, res.Type)
	return res, nil
}

// AddAsset creates an asset under root, or under the detected root when
// root is empty. With a host, the open document is saved as the asset's
// first work file.
func (s *Service) AddAsset(root string, kind models.AssetKind, assetID string) (*project.Result, error) {
	root, err := s.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	res, err := s.generator.CreateAssetStructure(root, kind, assetID)
	if err != nil {
		return nil, err
	}
	s.saveIntoSeed(res)
	return res, nil
}

// AddShot creates a shot under root, or under the detected root when root
// is empty. With a host, the open document is saved as the shot's first
// work file.
func (s *Service) AddShot(root, seqID, shotID string) (*project.Result, error) {
	root, err := s.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	res, err := s.generator.CreateShotStructure(root, seqID, shotID)
	if err != nil {
		return nil, err
	}
	s.saveIntoSeed(res)
	return res, nil
}

func (s *Service) saveIntoSeed(res *project.Result) {
	if s.host == nil || len(res.SeedFiles) == 0 {
		return
	}
	seed := res.SeedFiles[0]
	if err := s.host.SaveDocumentAs(seed); err != nil {
		s.logger.Warn("could not save current document into new structure", "path", seed, "error", err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("save current document as %s: %v", filepath.Base(seed), err))
	}
}

// ChangeAssetKind moves an asset between kinds and returns its new directory.
func (s *Service) ChangeAssetKind(root string, from, to models.AssetKind, assetID string) (string, error) {
	root, err := s.resolveRoot(root)
	if err != nil {
		return "", err
	}
	return s.generator.ChangeAssetKind(root, from, to, assetID)
}

// Reclassification describes a ReclassifyCurrent move.
type Reclassification struct {
	Root    string
	ID      string
	From    models.AssetKind
	To      models.AssetKind
	Dir     string // New asset directory.
	OldPath string // Document path before the move.
	NewPath string // Document path after the move.
}

// ReclassifyCurrent moves the asset containing the host's open document to
// a new kind. The document is saved before the move and reopened from its
// new location afterwards.
func (s *Service) ReclassifyCurrent(to models.AssetKind) (*Reclassification, error) {
	if s.host == nil {
		return nil, ErrNoHostDocument
	}
	doc := s.host.CurrentDocumentPath()
	if doc == "" {
		return nil, ErrNoHostDocument
	}
	doc, err := filepath.Abs(doc)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", doc, err)
	}

	root, err := s.detector.FindRoot(doc)
	if err != nil {
		return nil, err
	}
	loc, ok := project.LocateAsset(root, doc)
	if !ok {
		// The remembered root may belong to another project; retry from the document.
		if walked, werr := project.WalkUp(doc); werr == nil && walked != root {
			root = walked
			loc, ok = project.LocateAsset(root, doc)
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotInAsset, doc)
	}

	r := &Reclassification{Root: root, ID: loc.ID, From: loc.Kind, To: to, OldPath: doc}
	if loc.Kind == to {
		r.Dir = filepath.Dir(doc)
		r.NewPath = doc
		return r, nil
	}

	if err := s.host.SaveDocument(); err != nil {
		return nil, fmt.Errorf("save %s before move: %w", doc, err)
	}
	dir, err := s.generator.ChangeAssetKind(root, loc.Kind, to, loc.ID)
	if err != nil {
		return nil, err
	}
	r.Dir = dir

	oldDir := filepath.Join(root, defs.AssetsDir, string(loc.Kind), loc.ID)
	rel, err := filepath.Rel(oldDir, doc)
	if err != nil {
		return nil, fmt.Errorf("rebase %s: %w", doc, err)
	}
	r.NewPath = filepath.Join(dir, rel)

	if err := s.host.OpenDocument(r.NewPath); err != nil {
		return r, fmt.Errorf("reopen %s: %w", r.NewPath, err)
	}
	return r, nil
}

// LoadIdentity returns the stored metadata of root, or nil if there is none.
func (s *Service) LoadIdentity(root string) (*metadata.Metadata, error) {
	root, err := s.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	return s.store.Read(root)
}

// SyncIdentity merges fields into the metadata of root.
func (s *Service) SyncIdentity(root string, fields metadata.Fields) (*metadata.Metadata, error) {
	root, err := s.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	if fields.Type != "" && !fields.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", project.ErrUnknownProjectType, fields.Type)
	}
	return s.store.Write(root, fields)
}

// ValidateName checks filename against the naming grammar. When domain is
// empty it is inferred from path.
func (s *Service) ValidateName(filename string, domain models.Domain, path string) (naming.Components, error) {
	return naming.Validate(filename, domain, path)
}

// RootInfo is a detected project root and its classification.
type RootInfo struct {
	Root string
	Type models.ProjectType
}

// DetectRoot locates the project root from hint, the host's document, or
// the remembered root, and remembers the result. fresh skips the
// remembered root.
func (s *Service) DetectRoot(hint string, fresh bool) (*RootInfo, error) {
	if hint == "" && s.host != nil {
		hint = s.host.CurrentDocumentPath()
	}

	var (
		root string
		err  error
	)
	if fresh {
		if hint == "" {
			return nil, project.ErrNoStartingPoint
		}
		root, err = project.WalkUp(hint)
	} else {
		root, err = s.detector.FindRoot(hint)
	}
	if err != nil {
		return nil, err
	}

	t, err := project.DetectProjectType(root)
	if err != nil {
		return nil, err
	}
	s.session.Remember(root, t)
	return &RootInfo{Root: root, Type: t}, nil
}

// ProjectInfo summarizes a project root.
type ProjectInfo struct {
	Root     string
	Type     models.ProjectType
	Marked   bool               // Whether the marker file is present.
	Metadata *metadata.Metadata // Nil when absent or unreadable.
}

// ProjectInfo classifies root and loads its metadata.
func (s *Service) ProjectInfo(root string) (*ProjectInfo, error) {
	root, err := s.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	t, err := project.DetectProjectType(root)
	if err != nil {
		return nil, err
	}
	m, err := s.store.Read(root)
	if err != nil {
		s.logger.Warn("project metadata unreadable", "root", root, "error", err)
	}
	return &ProjectInfo{Root: root, Type: t, Marked: metadata.IsProjectRoot(root), Metadata: m}, nil
}

// FileEntry is one entry returned by ListFiles.
type FileEntry struct {
	Name    string
	Path    string // Slash-separated, relative to the project root.
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// ListFiles lists the directory rel inside root sorted by name. Paths escaping root are rejected with project.ErrPathOutsideRoot.
func (s *Service) ListFiles(root, rel string) ([]FileEntry, error) {
	root, err := s.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	dir, err := project.ResolveInside(root, rel)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &project.IOError{Op: "read", Path: dir, Err: err}
	}

	base := filepath.Clean(filepath.FromSlash(rel))
	if base == "." {
		base = ""
	}
	out := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		fe := FileEntry{
			Name:    e.Name(),
			Path:    filepath.ToSlash(filepath.Join(base, e.Name())),
			IsDir:   e.IsDir(),
			ModTime: info.ModTime(),
		}
		if !fe.IsDir {
			fe.Size = info.Size()
		}
		out = append(out, fe)
	}
	slices.SortFunc(out, func(a, b FileEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

// resolveRoot returns root made absolute, or the detected root when empty.
func (s *Service) resolveRoot(root string) (string, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", &project.IOError{Op: "resolve", Path: root, Err: err}
		}
		return abs, nil
	}
	info, err := s.DetectRoot("", false)
	if err != nil {
		return "", err
	}
	return info.Root, nil
}
