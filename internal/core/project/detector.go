package project

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// MaxWalkLevels bounds the upward search: the start directory and at most
// MaxWalkLevels-1 of its ancestors are tested.
const MaxWalkLevels = 10

// Detector locates project roots.
type Detector struct {
	session *Session
	logger  *slog.Logger
}

// NewDetector creates a Detector. session may be nil, which disables the
// remembered-root fast path.
func NewDetector(session *Session, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Detector{session: session, logger: logger}
}

// @MX:ANCHOR: [AUTO] every structure operation without an explicit root resolves it here.
// FindRoot returns the project root for hint. A remembered root that still
// looks like a project wins without walking; otherwise the walk starts at
// hint (its directory when hint is a file). With neither available the
// result is ErrNoStartingPoint.
func (d *Detector) FindRoot(hint string) (string, error) {
	if remembered := d.session.Root(); remembered != "" {
		if IsRoot(remembered) {
			d.logger.Debug("using remembered project root", "root", remembered)
			return remembered, nil
		}
		d.logger.Debug("remembered project root is stale", "root", remembered)
	}

	if hint == "" {
		return "", ErrNoStartingPoint
	}
	return WalkUp(hint)
}

// WalkUp searches from start towards the file system root for a directory
// that IsRoot accepts, testing at most MaxWalkLevels directories.
func WalkUp(start string) (string, error) {
	dir, err := startDir(start)
	if err != nil {
		return "", err
	}

	for level := 0; level < MaxWalkLevels; level++ {
		if IsRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", &rootNotFoundError{start: start}
}

type rootNotFoundError struct {
	start string
}

func (e *rootNotFoundError) Error() string {
	return ErrRootNotFound.Error() + " from " + e.start
}

func (e *rootNotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}

// startDir resolves path to an absolute directory. Files yield their parent.
// A path that does not exist yet (an unsaved document) is treated as a file.
func startDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ioErr("resolve", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return abs, nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return filepath.Dir(abs), nil
	default:
		return "", ioErr("stat", abs, err)
	}
}

// IsRoot reports whether dir holds either conventional top-level directory.
// The marker file alone does not make a root.
func IsRoot(dir string) bool {
	return isDir(filepath.Join(dir, defs.AssetsDir)) || isDir(filepath.Join(dir, defs.ShotsDir))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DetectProjectType classifies root from the layout of its shot directory.
func DetectProjectType(root string) (models.ProjectType, error) {
	shots := filepath.Join(root, defs.ShotsDir)
	entries, err := os.ReadDir(shots)
	if errors.Is(err, fs.ErrNotExist) {
		return models.ProjectTypeAssetLibrary, nil
	}
	if err != nil {
		return models.ProjectTypeUnknown, ioErr("read", shots, err)
	}

	hasShot := false
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), defs.SequencePrefix) {
			return models.ProjectTypeShortFilm, nil
		}
		if strings.HasPrefix(e.Name(), defs.ShotPrefix) {
			hasShot = true
		}
	}
	if hasShot {
		return models.ProjectTypeSingleShot, nil
	}
	return models.ProjectTypeUnknown, nil
}

// LocateAsset infers the asset that contains path. The boolean is false when
// path is not inside an asset directory of root.
func LocateAsset(root, path string) (models.AssetLocation, bool) {
	assets := filepath.Join(root, defs.AssetsDir)
	rel, err := filepath.Rel(assets, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return models.AssetLocation{}, false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 || parts[1] == "" {
		return models.AssetLocation{}, false
	}
	kind := models.AssetKind(parts[0])
	if !kind.IsValid() {
		return models.AssetLocation{}, false
	}
	return models.AssetLocation{Kind: kind, ID: parts[1]}, true
}
