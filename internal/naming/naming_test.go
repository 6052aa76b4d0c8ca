package naming

import (
	"errors"
	"testing"

	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		want     Components
		wantErr  bool
	}{
		{"with task", "char_hero_model_v003.blend", Components{Scope: "char", Subject: "hero", Task: "model", Version: 3}, false},
		{"shot with digits", "shot_seq010sh0010_anim_v012.blend", Components{Scope: "shot", Subject: "seq010sh0010", Task: "anim", Version: 12}, false},
		{"without task", "hero_v001.blend", Components{Subject: "hero", Version: 1}, false},
		{"two segments falls back", "hero_model_v001", Components{Subject: "hero_model", Version: 1}, false},
		{"directory ignored", "/proj/01_assets/char/hero/work/char_hero_rig_v010.blend", Components{Scope: "char", Subject: "hero", Task: "rig", Version: 10}, false},
		{"long version", "prop_box_model_v1234.blend", Components{Scope: "prop", Subject: "box", Task: "model", Version: 1234}, false},
		{"version past int range", "prop_box_model_v99999999999999999999.blend", Components{}, true},
		{"uppercase", "Hero_model_v001.blend", Components{}, true},
		{"no version", "hero_model.blend", Components{}, true},
		{"empty", "", Components{}, true},
		{"hyphen", "hero-boy_v001.blend", Components{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFilenameFormat) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidFilenameFormat", tt.filename, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestValidateAsset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		wantErr  error
	}{
		{"char_hero_model_v003.blend", nil},
		{"prop_crate_texture_v001.blend", nil},
		{"crate_v002.blend", nil},
		{"char_hero_anim_v001.blend", ErrForbiddenAssetTask},
		{"char_hero_layout_v001.blend", ErrForbiddenAssetTask},
		{"char_hero_lighting_v001.blend", ErrForbiddenAssetTask},
		{"char_hero_comp_v001.blend", ErrForbiddenAssetTask},
		{"fx_fire_fx_v001.blend", ErrUnknownAssetTask},
		{"char_hero_sculpt_v001.blend", ErrUnknownAssetTask},
		{"not a name", ErrInvalidFilenameFormat},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateAsset(tt.filename)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateAsset(%q) unexpected error: %v", tt.filename, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAsset(%q) error = %v, want %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestValidateShot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		wantErr  error
	}{
		{"shot_seq010sh0010_anim_v012.blend", nil},
		{"shot_sh0001_layout_v001.blend", nil},
		{"shot_sh0001_fx_v004.blend", nil},
		{"char_hero_anim_v001.blend", ErrInvalidShotScope},
		{"sh0010_v001.blend", ErrInvalidShotScope},
		{"shot_sh0010_model_v001.blend", ErrUnknownShotTask},
		{"shot.blend", ErrInvalidFilenameFormat},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateShot(tt.filename)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateShot(%q) unexpected error: %v", tt.filename, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateShot(%q) error = %v, want %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestValidateInfersDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		domain  models.Domain
		file    string
		wantErr error
	}{
		{"asset path", "/p/01_assets/char/hero/work/x.blend", models.DomainNone, "char_hero_anim_v001.blend", ErrForbiddenAssetTask},
		{"shot path", `C:\p\02_shots\sh_0001\work\x.blend`, models.DomainNone, "shot_sh0001_anim_v001.blend", nil},
		{"relative asset path", "01_assets/prop/box/work/x.blend", models.DomainNone, "prop_box_model_v001.blend", nil},
		{"explicit wins", "/p/01_assets/x.blend", models.DomainShot, "shot_sh0001_anim_v001.blend", nil},
		{"unknown", "/p/05_lib/x.blend", models.DomainNone, "hero_v001.blend", ErrIndeterminateDomain},
		{"no path", "", models.DomainNone, "hero_v001.blend", ErrIndeterminateDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Validate(tt.file, tt.domain, tt.path)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeneratedNamesValidate(t *testing.T) {
	t.Parallel()

	for _, task := range AssetTasks() {
		for _, v := range []int{1, 12, 999, 1000} {
			name, err := GenerateAssetFilename("hero_boy", task.Name, v)
			if err != nil {
				t.Fatalf("GenerateAssetFilename(%q, %d): %v", task.Name, v, err)
			}
			c, err := ValidateAsset(name)
			if err != nil {
				t.Fatalf("ValidateAsset(%q): %v", name, err)
			}
			if c.Task != task.Name || c.Version != v {
				t.Errorf("round trip %q = %+v", name, c)
			}
		}
	}

	// Single-segment ids read back through the without-task grammar.
	for _, task := range AssetTasks() {
		name, err := GenerateAssetFilename("hero", task.Name, 1)
		if err != nil {
			t.Fatalf("GenerateAssetFilename(hero, %q): %v", task.Name, err)
		}
		if _, err := ValidateAsset(name); err != nil {
			t.Errorf("ValidateAsset(%q): %v", name, err)
		}
	}

	for _, task := range ShotTasks() {
		name, err := GenerateShotFilename("seq_010_sh_0010", task.Name, 7)
		if err != nil {
			t.Fatalf("GenerateShotFilename(%q): %v", task.Name, err)
		}
		c, err := ValidateShot(name)
		if err != nil {
			t.Fatalf("ValidateShot(%q): %v", name, err)
		}
		if c.Subject != "seq010sh0010" || c.Task != task.Name || c.Version != 7 {
			t.Errorf("round trip %q = %+v", name, c)
		}
	}
}

func TestGenerateRejects(t *testing.T) {
	t.Parallel()

	if _, err := GenerateAssetFilename("hero", "anim", 1); !errors.Is(err, ErrForbiddenAssetTask) {
		t.Errorf("forbidden task error = %v", err)
	}
	if _, err := GenerateAssetFilename("Hero Boy", "model", 1); !errors.Is(err, ErrInvalidFilenameFormat) {
		t.Errorf("bad id error = %v", err)
	}
	if _, err := GenerateAssetFilename("", "model", 1); !errors.Is(err, ErrMissingSubject) {
		t.Errorf("empty id error = %v", err)
	}
	if _, err := GenerateShotFilename("sh_0010", "", 1); !errors.Is(err, ErrMissingShotTask) {
		t.Errorf("missing shot task error = %v", err)
	}
	if _, err := GenerateShotFilename("sh_0010", "rig", 1); !errors.Is(err, ErrUnknownShotTask) {
		t.Errorf("unknown shot task error = %v", err)
	}

	if _, err := GenerateAssetFilename("big_hero_boy", "", 1); !errors.Is(err, ErrInvalidFilenameFormat) {
		t.Errorf("ambiguous id error = %v", err)
	}

	for _, v := range []int{0, -1} {
		if _, err := GenerateAssetFilename("hero", "model", v); !errors.Is(err, ErrInvalidFilenameFormat) {
			t.Errorf("asset version %d error = %v", v, err)
		}
		if _, err := GenerateShotFilename("sh_0010", "anim", v); !errors.Is(err, ErrInvalidFilenameFormat) {
			t.Errorf("shot version %d error = %v", v, err)
		}
	}

	name, err := GenerateAssetFilename("crate", "", 2)
	if err != nil || name != "crate_v002.blend" {
		t.Errorf("GenerateAssetFilename without task = %q, %v", name, err)
	}
}

func TestFxIsUnknownNotForbidden(t *testing.T) {
	t.Parallel()

	if IsForbiddenAssetTask("fx") {
		t.Error("fx must not be a forbidden asset task")
	}
	if IsAssetTask("fx") {
		t.Error("fx must not be an asset task")
	}
	if !IsShotTask("fx") {
		t.Error("fx must be a shot task")
	}
}
