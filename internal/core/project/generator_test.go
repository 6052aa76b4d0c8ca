package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/internal/metadata"
	"github.com/studio-scaffolder/scaffolder/internal/naming"
	"github.com/studio-scaffolder/scaffolder/internal/schema"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// --- Test doubles ---

type recordingBaseline struct {
	paths []string
	err   error
}

func (b *recordingBaseline) WriteBaseline(path string) error {
	b.paths = append(b.paths, path)
	if b.err != nil {
		return b.err
	}
	return os.WriteFile(path, []byte("BLENDER"), 0o644)
}

func newTestGenerator(t *testing.T, baseline BaselineWriter) *Generator {
	t.Helper()
	reg, err := schema.Default()
	if err != nil {
		t.Fatalf("schema.Default() error = %v", err)
	}
	return NewGenerator(reg, nil, nil, baseline, nil)
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// --- CreateProject ---

func TestCreateProject_ShortFilmScenario(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	g := newTestGenerator(t, nil)

	res, err := g.CreateProject(ProjectOptions{BasePath: base, Code: "My Film", Type: models.ProjectTypeShortFilm})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	wantRoot := filepath.Join(base, "my_film")
	if res.Dir != wantRoot {
		t.Errorf("Dir = %q, want %q", res.Dir, wantRoot)
	}
	if res.Code != "my_film" {
		t.Errorf("Code = %q, want my_film", res.Code)
	}
	for _, d := range []string{"work", "publish", "cache", "render"} {
		if !exists(filepath.Join(wantRoot, "02_shots", "seq_010", "sh_0010", d)) {
			t.Errorf("missing 02_shots/seq_010/sh_0010/%s", d)
		}
	}
	for _, f := range []string{defs.MarkerFile, defs.MetadataFile, defs.ReadmeRelPath, defs.SettingsRelPath, "prod/project_overview_v001.blend"} {
		if !exists(filepath.Join(wantRoot, filepath.FromSlash(f))) {
			t.Errorf("missing %s", f)
		}
	}

	pt, err := DetectProjectType(wantRoot)
	if err != nil || pt != models.ProjectTypeShortFilm {
		t.Errorf("DetectProjectType() = %q, %v; want short_film", pt, err)
	}
}

func TestCreateProject_Metadata(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	g := newTestGenerator(t, nil)
	res, err := g.CreateProject(ProjectOptions{
		BasePath: base,
		Code:     "reel-24",
		Type:     models.ProjectTypeSingleShot,
		Author:   metadata.Author{Name: "Ana", Studio: "North"},
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	m, err := metadata.NewStore(nil).Read(res.Dir)
	if err != nil || m == nil {
		t.Fatalf("Read() = %v, %v", m, err)
	}
	if m.Project.Code != "reel_24" || m.Project.Type != "single_shot" || m.Author.Studio != "North" {
		t.Errorf("metadata = %+v", m)
	}

	data, err := os.ReadFile(filepath.Join(res.Dir, filepath.FromSlash(defs.SettingsRelPath)))
	if err != nil {
		t.Fatal(err)
	}
	var settings map[string]string
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("settings JSON: %v", err)
	}
	if settings["project_code"] != "reel_24" || settings["project_type"] != "single_shot" || settings["version"] != SettingsVersion {
		t.Errorf("settings = %v", settings)
	}

	readme, err := os.ReadFile(filepath.Join(res.Dir, filepath.FromSlash(defs.ReadmeRelPath)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(readme), "sh_0001/") {
		t.Errorf("README does not list the shot tree:\n%s", readme)
	}
}

func TestCreateProject_Twice(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	g := newTestGenerator(t, nil)
	opts := ProjectOptions{BasePath: base, Code: "film", Type: models.ProjectTypeAssetLibrary}

	if _, err := g.CreateProject(opts); err != nil {
		t.Fatalf("first CreateProject() error = %v", err)
	}
	if _, err := g.CreateProject(opts); !errors.Is(err, ErrProjectAlreadyExists) {
		t.Errorf("second CreateProject() error = %v, want ErrProjectAlreadyExists", err)
	}
}

func TestCreateProject_ReusesEmptyDirectory(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, nil)

	fresh := t.TempDir()
	a, err := g.CreateProject(ProjectOptions{BasePath: fresh, Code: "film", Type: models.ProjectTypeShortFilm})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	precreated := t.TempDir()
	if err := os.Mkdir(filepath.Join(precreated, "film"), 0o755); err != nil {
		t.Fatal(err)
	}
	b, err := g.CreateProject(ProjectOptions{BasePath: precreated, Code: "film", Type: models.ProjectTypeShortFilm})
	if err != nil {
		t.Fatalf("CreateProject() into empty dir error = %v", err)
	}

	if !slices.Equal(a.CreatedDirs, b.CreatedDirs) || !slices.Equal(a.CreatedFiles, b.CreatedFiles) {
		t.Errorf("results differ:\n%+v\n%+v", a.Result, b.Result)
	}
}

func TestCreateProject_Errors(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, nil)
	base := t.TempDir()

	tests := []struct {
		name string
		opts ProjectOptions
		want error
	}{
		{"empty code", ProjectOptions{BasePath: base, Code: "   ", Type: models.ProjectTypeShortFilm}, ErrEmptyProjectCode},
		{"unknown type", ProjectOptions{BasePath: base, Code: "x", Type: "feature"}, ErrUnknownProjectType},
		{"separator in code", ProjectOptions{BasePath: base, Code: "a/b", Type: models.ProjectTypeShortFilm}, ErrInvalidIdentifier},
	}
	for _, tt := range tests {
		if _, err := g.CreateProject(tt.opts); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestCreateProject_BaselineFallback(t *testing.T) {
	t.Parallel()

	b := &recordingBaseline{err: errors.New("tool missing")}
	g := newTestGenerator(t, b)

	res, err := g.CreateProject(ProjectOptions{BasePath: t.TempDir(), Code: "film", Type: models.ProjectTypeAssetLibrary})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if len(b.paths) != 1 {
		t.Fatalf("baseline called %d times, want 1", len(b.paths))
	}
	if len(res.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", res.Warnings)
	}
	info, err := os.Stat(b.paths[0])
	if err != nil || info.Size() != 0 {
		t.Errorf("placeholder not written: %v", err)
	}
}

// --- Assets and shots ---

func createLibrary(t *testing.T, g *Generator) string {
	t.Helper()
	res, err := g.CreateProject(ProjectOptions{BasePath: t.TempDir(), Code: "lib", Type: models.ProjectTypeAssetLibrary})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	return res.Dir
}

func TestCreateAssetStructure(t *testing.T) {
	t.Parallel()

	b := &recordingBaseline{}
	g := newTestGenerator(t, b)
	root := createLibrary(t, g)

	res, err := g.CreateAssetStructure(root, models.AssetKindCharacter, "Hero Boy")
	if err != nil {
		t.Fatalf("CreateAssetStructure() error = %v", err)
	}
	if res.Dir != filepath.Join(root, "01_assets", "char", "hero_boy") {
		t.Errorf("Dir = %q", res.Dir)
	}
	seed := filepath.Join(res.Dir, "work", "hero_boy_model_v001.blend")
	if !slices.Contains(res.SeedFiles, seed) {
		t.Errorf("SeedFiles = %v, want %s", res.SeedFiles, seed)
	}
	if data, err := os.ReadFile(seed); err != nil || string(data) != "BLENDER" {
		t.Errorf("seed not produced by baseline writer: %q, %v", data, err)
	}
	if _, err := naming.ValidateAsset(filepath.Base(seed)); err != nil {
		t.Errorf("seed name does not validate: %v", err)
	}

	if _, err := g.CreateAssetStructure(root, models.AssetKindCharacter, "hero_boy"); !errors.Is(err, ErrAssetDirAlreadyExists) {
		t.Errorf("second create error = %v, want ErrAssetDirAlreadyExists", err)
	}
	if _, err := g.CreateAssetStructure(root, "mat", "wood"); !errors.Is(err, ErrUnknownAssetKind) {
		t.Errorf("unknown kind error = %v", err)
	}
	if _, err := g.CreateAssetStructure(root, models.AssetKindProp, "crate!"); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("bad id error = %v", err)
	}
	if _, err := g.CreateAssetStructure(filepath.Join(root, "missing"), models.AssetKindProp, "crate"); !errors.Is(err, ErrRootNotFound) {
		t.Errorf("missing root error = %v", err)
	}
}

func TestCreateAssetStructure_FxHasCache(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, nil)
	root := createLibrary(t, g)

	res, err := g.CreateAssetStructure(root, models.AssetKindEffects, "fire")
	if err != nil {
		t.Fatalf("CreateAssetStructure() error = %v", err)
	}
	if !exists(filepath.Join(res.Dir, "cache")) || exists(filepath.Join(res.Dir, "render")) {
		t.Errorf("fx tree wrong: %v", res.CreatedDirs)
	}
	if !exists(filepath.Join(res.Dir, "work", "fire_setup_v001.blend")) {
		t.Error("fx seed missing")
	}
}

func TestCreateShotStructure(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, nil)
	root := createLibrary(t, g)

	res, err := g.CreateShotStructure(root, "20", "30")
	if err != nil {
		t.Fatalf("CreateShotStructure() error = %v", err)
	}
	if res.Dir != filepath.Join(root, "02_shots", "seq_020", "sh_0030") {
		t.Errorf("Dir = %q", res.Dir)
	}
	seed := filepath.Join(res.Dir, "work", "shot_seq020sh0030_layout_v001.blend")
	if !exists(seed) {
		t.Fatalf("seed %s missing", seed)
	}
	if _, err := naming.ValidateShot(filepath.Base(seed)); err != nil {
		t.Errorf("seed name does not validate: %v", err)
	}

	if _, err := g.CreateShotStructure(root, "seq_020", "sh_0030"); !errors.Is(err, ErrShotDirAlreadyExists) {
		t.Errorf("second create error = %v", err)
	}
	if _, err := g.CreateShotStructure(root, "", "10"); !errors.Is(err, ErrUnknownSeqOrShot) {
		t.Errorf("empty seq error = %v", err)
	}
}

func TestChangeAssetKind(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, nil)
	root := createLibrary(t, g)
	if _, err := g.CreateAssetStructure(root, models.AssetKindProp, "lamp"); err != nil {
		t.Fatal(err)
	}

	same, err := g.ChangeAssetKind(root, models.AssetKindProp, models.AssetKindProp, "lamp")
	if err != nil || same != filepath.Join(root, "01_assets", "prop", "lamp") {
		t.Errorf("no-op move = %q, %v", same, err)
	}

	dst, err := g.ChangeAssetKind(root, models.AssetKindProp, models.AssetKindLight, "lamp")
	if err != nil {
		t.Fatalf("ChangeAssetKind() error = %v", err)
	}
	if !exists(filepath.Join(dst, "work", "lamp_model_v001.blend")) {
		t.Error("work file not moved")
	}
	if exists(filepath.Join(root, "01_assets", "prop", "lamp")) {
		t.Error("source still exists")
	}

	if _, err := g.ChangeAssetKind(root, models.AssetKindProp, models.AssetKindLight, "lamp"); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("missing source error = %v", err)
	}

	if _, err := g.CreateAssetStructure(root, models.AssetKindProp, "lamp"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.ChangeAssetKind(root, models.AssetKindProp, models.AssetKindLight, "lamp"); !errors.Is(err, ErrDestinationExists) {
		t.Errorf("existing destination error = %v", err)
	}
}

func TestCopyTree(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	mkdirs(t, src, "work/sub")
	if err := os.WriteFile(filepath.Join(src, "work", "sub", "f.txt"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(t.TempDir(), "copy")

	if err := copyTree(src, dst); err != nil {
		t.Fatalf("copyTree() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "work", "sub", "f.txt"))
	if err != nil || string(data) != "data" {
		t.Errorf("copied file = %q, %v", data, err)
	}
}
