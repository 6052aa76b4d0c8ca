package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
}

func resolved(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	if err != nil {
		t.Fatalf("EvalSymlinks(%s): %v", p, err)
	}
	return r
}

func TestWalkUp_FindsAncestorWithinBound(t *testing.T) {
	t.Parallel()

	root := resolved(t, t.TempDir())
	mkdirs(t, root, defs.AssetsDir)

	// Nine levels below the root: the root is the tenth directory tested.
	deep := filepath.Join(append([]string{root}, strings.Split("a/b/c/d/e/f/g/h/i", "/")...)...)
	mkdirs(t, deep)

	got, err := WalkUp(deep)
	if err != nil {
		t.Fatalf("WalkUp() error = %v", err)
	}
	if got != root {
		t.Errorf("WalkUp() = %q, want %q", got, root)
	}
}

func TestWalkUp_BeyondBound(t *testing.T) {
	t.Parallel()

	root := resolved(t, t.TempDir())
	mkdirs(t, root, defs.ShotsDir)

	deep := filepath.Join(append([]string{root}, strings.Split("a/b/c/d/e/f/g/h/i/j", "/")...)...)
	mkdirs(t, deep)

	_, err := WalkUp(deep)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("WalkUp() error = %v, want ErrRootNotFound", err)
	}
}

func TestWalkUp_FileHint(t *testing.T) {
	t.Parallel()

	root := resolved(t, t.TempDir())
	mkdirs(t, root, "01_assets/char/hero/work")
	doc := filepath.Join(root, "01_assets/char/hero/work/hero_model_v001.blend")
	if err := os.WriteFile(doc, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, hint := range []string{doc, filepath.Join(root, "01_assets/char/hero/work/unsaved_v002.blend")} {
		got, err := WalkUp(hint)
		if err != nil {
			t.Fatalf("WalkUp(%s) error = %v", hint, err)
		}
		if got != root {
			t.Errorf("WalkUp(%s) = %q, want %q", hint, got, root)
		}
	}
}

func TestWalkUp_MarkerAloneIsNotARoot(t *testing.T) {
	t.Parallel()

	root := resolved(t, t.TempDir())
	if err := os.WriteFile(filepath.Join(root, defs.MarkerFile), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	mkdirs(t, root, "docs")

	if got, err := WalkUp(filepath.Join(root, "docs")); !errors.Is(err, ErrRootNotFound) {
		t.Errorf("WalkUp() = %q, %v; want ErrRootNotFound", got, err)
	}
}

func TestWalkUp_SkipsStrayMarker(t *testing.T) {
	t.Parallel()

	root := resolved(t, t.TempDir())
	hero := filepath.Join(root, "01_assets/char/hero")
	mkdirs(t, hero, "work")
	if err := os.WriteFile(filepath.Join(hero, defs.MarkerFile), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := WalkUp(filepath.Join(hero, "work/hero_model_v001.blend"))
	if err != nil {
		t.Fatalf("WalkUp() error = %v", err)
	}
	if got != root {
		t.Errorf("WalkUp() = %q, want %q", got, root)
	}
}

func TestFindRoot_StaleRememberedMarkerOnly(t *testing.T) {
	t.Parallel()

	remembered := resolved(t, t.TempDir())
	if err := os.WriteFile(filepath.Join(remembered, defs.MarkerFile), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	other := resolved(t, t.TempDir())
	mkdirs(t, other, defs.AssetsDir)

	d := NewDetector(NewSession(remembered, models.ProjectTypeShortFilm), nil)
	got, err := d.FindRoot(other)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if got != other {
		t.Errorf("FindRoot() = %q, want %q", got, other)
	}
}

func TestFindRoot(t *testing.T) {
	t.Parallel()

	t.Run("no starting point", func(t *testing.T) {
		t.Parallel()
		d := NewDetector(NewSession("", ""), nil)
		if _, err := d.FindRoot(""); !errors.Is(err, ErrNoStartingPoint) {
			t.Errorf("FindRoot() error = %v, want ErrNoStartingPoint", err)
		}
	})

	t.Run("remembered root wins", func(t *testing.T) {
		t.Parallel()
		remembered := resolved(t, t.TempDir())
		mkdirs(t, remembered, defs.AssetsDir)
		other := resolved(t, t.TempDir())
		mkdirs(t, other, defs.ShotsDir, "02_shots/sh_0001")

		d := NewDetector(NewSession(remembered, models.ProjectTypeAssetLibrary), nil)
		got, err := d.FindRoot(filepath.Join(other, "02_shots/sh_0001"))
		if err != nil || got != remembered {
			t.Errorf("FindRoot() = %q, %v; want %q", got, err, remembered)
		}
	})

	t.Run("stale remembered root falls back to walk", func(t *testing.T) {
		t.Parallel()
		stale := filepath.Join(t.TempDir(), "gone")
		root := resolved(t, t.TempDir())
		mkdirs(t, root, defs.AssetsDir)

		d := NewDetector(NewSession(stale, ""), nil)
		got, err := d.FindRoot(filepath.Join(root, defs.AssetsDir))
		if err != nil || got != root {
			t.Errorf("FindRoot() = %q, %v; want %q", got, err, root)
		}
		if _, err := d.FindRoot(""); !errors.Is(err, ErrNoStartingPoint) {
			t.Errorf("FindRoot(\"\") error = %v, want ErrNoStartingPoint", err)
		}
	})

	t.Run("nil session", func(t *testing.T) {
		t.Parallel()
		d := NewDetector(nil, nil)
		if _, err := d.FindRoot(""); !errors.Is(err, ErrNoStartingPoint) {
			t.Errorf("FindRoot() error = %v", err)
		}
	})
}

func TestDetectProjectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dirs []string
		want models.ProjectType
	}{
		{"short film", []string{"02_shots/seq_010/sh_0010"}, models.ProjectTypeShortFilm},
		{"single shot", []string{"02_shots/sh_0010"}, models.ProjectTypeSingleShot},
		{"asset library", []string{"01_assets/char"}, models.ProjectTypeAssetLibrary},
		{"empty shots", []string{"02_shots"}, models.ProjectTypeUnknown},
		{"mixed prefers sequences", []string{"02_shots/sh_0001", "02_shots/seq_020"}, models.ProjectTypeShortFilm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			mkdirs(t, root, tt.dirs...)
			got, err := DetectProjectType(root)
			if err != nil {
				t.Fatalf("DetectProjectType() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectProjectType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectProjectType_IgnoresFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, defs.ShotsDir)
	if err := os.WriteFile(filepath.Join(root, defs.ShotsDir, "seq_notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := DetectProjectType(root)
	if err != nil || got != models.ProjectTypeUnknown {
		t.Errorf("DetectProjectType() = %q, %v; want unknown", got, err)
	}
}

func TestLocateAsset(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/studio/film")
	tests := []struct {
		path   string
		want   models.AssetLocation
		wantOK bool
	}{
		{"/studio/film/01_assets/char/hero/work/hero_model_v001.blend", models.AssetLocation{Kind: models.AssetKindCharacter, ID: "hero"}, true},
		{"/studio/film/01_assets/prop/crate", models.AssetLocation{Kind: models.AssetKindProp, ID: "crate"}, true},
		{"/studio/film/01_assets/char", models.AssetLocation{}, false},
		{"/studio/film/01_assets/mat/wood/x.blend", models.AssetLocation{}, false},
		{"/studio/film/02_shots/sh_0001/work/x.blend", models.AssetLocation{}, false},
		{"/elsewhere/01_assets/char/hero/x.blend", models.AssetLocation{}, false},
	}

	for _, tt := range tests {
		got, ok := LocateAsset(root, filepath.FromSlash(tt.path))
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("LocateAsset(%s) = %+v, %v; want %+v, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}
