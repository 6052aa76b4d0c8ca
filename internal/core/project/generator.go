package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/internal/metadata"
	"github.com/studio-scaffolder/scaffolder/internal/naming"
	"github.com/studio-scaffolder/scaffolder/internal/schema"
	"github.com/studio-scaffolder/scaffolder/internal/template"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// SettingsVersion is written into prod/project_settings.json.
const SettingsVersion = "1.0.0"

// ProjectOptions configures CreateProject.
type ProjectOptions struct {
	BasePath string             // Directory the project root is created in.
	Code     string             // Project code; normalized before use.
	Type     models.ProjectType // Template to materialize.
	Author   metadata.Author    // Optional identity stamped into project.json.
}

// Result summarizes what a create operation did. Paths in CreatedDirs and
// CreatedFiles are relative to Dir; pre-existing entries are not listed.
type Result struct {
	Dir          string   // Absolute directory the template was materialized in.
	CreatedDirs  []string // Directories that did not exist before.
	CreatedFiles []string // Seed and generated files written.
	SeedFiles    []string // Absolute paths of every seed file of the template.
	Warnings     []string // Non-fatal problems, such as a baseline fallback.
}

// ProjectResult is the outcome of CreateProject.
type ProjectResult struct {
	Result
	Code     string
	Type     models.ProjectType
	Metadata *metadata.Metadata
}

// Generator materializes schema templates on disk.
type Generator struct {
	registry *schema.Registry
	store    *metadata.Store
	renderer template.Renderer
	baseline BaselineWriter
	logger   *slog.Logger
}

// NewGenerator creates a Generator. A nil store, renderer or baseline falls
// back to the default implementation.
func NewGenerator(registry *schema.Registry, store *metadata.Store, renderer template.Renderer, baseline BaselineWriter, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if store == nil {
		store = metadata.NewStore(logger)
	}
	if renderer == nil {
		renderer = template.NewRenderer(nil)
	}
	if baseline == nil {
		baseline = PlaceholderBaseline{}
	}
	return &Generator{
		registry: registry,
		store:    store,
		renderer: renderer,
		baseline: baseline,
		logger:   logger,
	}
}

// CreateProject creates a new project root under opts.BasePath. An existing
// empty directory is reused; a non-empty one is ErrProjectAlreadyExists.
// Partially created trees are not rolled back; rerunning completes them.
func (g *Generator) CreateProject(opts ProjectOptions) (*ProjectResult, error) {
	code, err := NormalizeCode(opts.Code)
	if err != nil {
		return nil, err
	}
	ps, err := g.registry.Project(opts.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, opts.Type)
	}

	base, err := filepath.Abs(opts.BasePath)
	if err != nil {
		return nil, ioErr("resolve", opts.BasePath, err)
	}
	root := filepath.Join(base, ps.RootName(code))

	g.logger.Info("creating project", "root", root, "code", code, "type", opts.Type)

	if err := ensureEmptyOrAbsent(root); err != nil {
		return nil, err
	}

	res := &ProjectResult{Result: Result{Dir: root}, Code: code, Type: opts.Type}
	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return nil, ioErr("mkdir", root, err)
	}
	if err := g.materialize(root, ps.Template, schema.Values{ProjectCode: code}, &res.Result); err != nil {
		return nil, err
	}

	meta, err := g.store.Write(root, metadata.Fields{
		Code:       code,
		Type:       opts.Type,
		AuthorName: opts.Author.Name,
		Studio:     opts.Author.Studio,
		Role:       opts.Author.Role,
		Contact:    opts.Author.Contact,
		Copyright:  opts.Author.Copyright,
	})
	if err != nil {
		return nil, ioErr("write metadata", metadata.DocumentPath(root), err)
	}
	res.Metadata = meta
	res.CreatedFiles = append(res.CreatedFiles, defs.MarkerFile, defs.MetadataFile)

	if err := g.writeReadme(root, ps, meta); err != nil {
		return nil, err
	}
	res.CreatedFiles = append(res.CreatedFiles, defs.ReadmeRelPath)

	if err := writeSettings(root, code, opts.Type); err != nil {
		return nil, err
	}
	res.CreatedFiles = append(res.CreatedFiles, defs.SettingsRelPath)

	g.logger.Info("project created",
		"root", root,
		"dirs", len(res.CreatedDirs),
		"files", len(res.CreatedFiles),
	)
	return res, nil
}

// CreateAssetStructure creates 01_assets/<kind>/<id>/ under root.
func (g *Generator) CreateAssetStructure(root string, kind models.AssetKind, assetID string) (*Result, error) {
	tmpl, err := g.registry.Asset(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssetKind, kind)
	}
	id, err := normalizeAssetID(assetID)
	if err != nil {
		return nil, err
	}
	if err := requireDir(root); err != nil {
		return nil, err
	}

	dir := filepath.Join(root, defs.AssetsDir, string(kind), id)
	if _, err := os.Lstat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetDirAlreadyExists, dir)
	}

	g.logger.Info("creating asset", "root", root, "kind", kind, "id", id)

	res := &Result{Dir: dir}
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return nil, ioErr("mkdir", dir, err)
	}
	if err := g.materialize(dir, tmpl, schema.Values{AssetID: id}, res); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateShotStructure creates 02_shots/<seq>/<shot>/ under root. Bare ids
// are prefixed and padded, so ("10", "10") yields seq_010/sh_0010.
func (g *Generator) CreateShotStructure(root, seqID, shotID string) (*Result, error) {
	seq, err := NormalizeSequenceID(seqID)
	if err != nil {
		return nil, err
	}
	shot, err := NormalizeShotID(shotID)
	if err != nil {
		return nil, err
	}
	if err := requireDir(root); err != nil {
		return nil, err
	}

	dir := filepath.Join(root, defs.ShotsDir, seq, shot)
	if _, err := os.Lstat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrShotDirAlreadyExists, dir)
	}

	g.logger.Info("creating shot", "root", root, "sequence", seq, "shot", shot)

	res := &Result{Dir: dir}
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return nil, ioErr("mkdir", dir, err)
	}
	values := schema.Values{ShotID: naming.CompactID(seq, shot)}
	if err := g.materialize(dir, g.registry.Shot(), values, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ChangeAssetKind moves 01_assets/<from>/<id> to 01_assets/<to>/<id> and
// returns the new directory. Equal kinds are a successful no-op. Documents
// open inside the tree are the caller's concern.
func (g *Generator) ChangeAssetKind(root string, from, to models.AssetKind, assetID string) (string, error) {
	if !from.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAssetKind, from)
	}
	if !to.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAssetKind, to)
	}
	id, err := normalizeAssetID(assetID)
	if err != nil {
		return "", err
	}

	src := filepath.Join(root, defs.AssetsDir, string(from), id)
	if from == to {
		return src, nil
	}
	dst := filepath.Join(root, defs.AssetsDir, string(to), id)

	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}
	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), defs.DirPerm); err != nil {
		return "", ioErr("mkdir", filepath.Dir(dst), err)
	}

	g.logger.Info("changing asset kind", "id", id, "from", from, "to", to)
	if err := moveTree(src, dst, g.logger); err != nil {
		return "", err
	}
	return dst, nil
}

// materialize creates the template tree and seed files under dir. Existing
// directories and files are left untouched.
func (g *Generator) materialize(dir string, tmpl schema.Template, values schema.Values, res *Result) error {
	for _, rel := range tmpl.Dirs() {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		created, err := mkdirTracked(p)
		if err != nil {
			return err
		}
		if created {
			res.CreatedDirs = append(res.CreatedDirs, rel)
		}
	}

	for _, pattern := range tmpl.Files {
		rel := schema.Expand(pattern, values)
		p := filepath.Join(dir, filepath.FromSlash(rel))
		res.SeedFiles = append(res.SeedFiles, p)

		if _, err := os.Lstat(p); err == nil {
			continue
		}
		if err := g.writeSeed(p, res); err != nil {
			return err
		}
		res.CreatedFiles = append(res.CreatedFiles, rel)
	}
	return nil
}

// writeSeed creates one seed file. Documents go through the baseline
// writer; if it fails an empty placeholder takes its place.
func (g *Generator) writeSeed(p string, res *Result) error {
	if path.Ext(filepath.ToSlash(p)) == defs.DocumentExt {
		err := g.baseline.WriteBaseline(p)
		if err == nil {
			return nil
		}
		g.logger.Warn("baseline document failed, writing placeholder", "path", p, "error", err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("baseline %s: %v", filepath.Base(p), err))
	}
	return PlaceholderBaseline{}.WriteBaseline(p)
}

func (g *Generator) writeReadme(root string, ps schema.ProjectSchema, meta *metadata.Metadata) error {
	data := template.ReadmeData{
		Code:                meta.Project.Code,
		Type:                string(ps.Type),
		TypeLabel:           ps.Type.Label(),
		CreatedAt:           meta.Project.CreatedAt,
		GeneratedBy:         metadata.CreatedWith,
		Author:              meta.Author.Name,
		Studio:              meta.Author.Studio,
		Tree:                template.TreeLines(ps.Dirs()),
		AssetExample:        "hero_model_v001.blend",
		ShotExample:         "shot_seq010sh0010_anim_v001.blend",
		AssetTasks:          taskNames(naming.AssetTasks()),
		ShotTasks:           taskNames(naming.ShotTasks()),
		ForbiddenAssetTasks: forbiddenTasks(),
	}

	out, err := template.RenderReadme(g.renderer, data)
	if err != nil {
		return fmt.Errorf("render readme: %w", err)
	}
	return writeFile(filepath.Join(root, filepath.FromSlash(defs.ReadmeRelPath)), out)
}

type settingsDoc struct {
	ProjectCode string `json:"project_code"`
	ProjectType string `json:"project_type"`
	Version     string `json:"version"`
}

func writeSettings(root, code string, t models.ProjectType) error {
	data, err := json.MarshalIndent(settingsDoc{
		ProjectCode: code,
		ProjectType: string(t),
		Version:     SettingsVersion,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return writeFile(filepath.Join(root, filepath.FromSlash(defs.SettingsRelPath)), append(data, '\n'))
}

// writeFile overwrites p, creating its directory if needed.
func writeFile(p string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(p), defs.DirPerm); err != nil {
		return ioErr("mkdir", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, data, defs.FilePerm); err != nil {
		return ioErr("write", p, err)
	}
	return nil
}

func mkdirTracked(p string) (bool, error) {
	if info, err := os.Stat(p); err == nil {
		if !info.IsDir() {
			return false, ioErr("mkdir", p, fs.ErrExist)
		}
		return false, nil
	}
	if err := os.MkdirAll(p, defs.DirPerm); err != nil {
		return false, ioErr("mkdir", p, err)
	}
	return true, nil
}

func ensureEmptyOrAbsent(root string) error {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return ioErr("stat", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is a file", ErrProjectAlreadyExists, root)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return ioErr("read", root, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s is not empty", ErrProjectAlreadyExists, root)
	}
	return nil
}

func requireDir(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	return nil
}

func taskNames(tasks []naming.Task) []string {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return names
}

func forbiddenTasks() []string {
	var out []string
	for _, t := range naming.ShotTasks() {
		if naming.IsForbiddenAssetTask(t.Name) {
			out = append(out, t.Name)
		}
	}
	return out
}
