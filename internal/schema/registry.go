package schema

import (
	_ "embed"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/studio-scaffolder/scaffolder/internal/naming"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// SchemaVersion is the definition format this package understands.
const SchemaVersion = 1

// ShotKey selects the shot template in Lookup.
const ShotKey = "shot"

//go:embed schema.yaml
var definition []byte

// Sample ids used to check that seed files follow the naming grammar.
const (
	sampleAssetID = "sample"
	sampleShotID  = "seq010sh0010"
)

// ProjectSchema is the template for one project type.
type ProjectSchema struct {
	Type        models.ProjectType
	RootPattern string
	Template
}

// RootName expands the root-name pattern for a normalized project code.
func (p ProjectSchema) RootName(code string) string {
	return Expand(p.RootPattern, Values{ProjectCode: code})
}

// Registry answers template lookups. Accessors return deep copies, so a
// Registry can be shared freely.
type Registry struct {
	projects map[models.ProjectType]ProjectSchema
	assets   map[models.AssetKind]Template
	shot     Template
}

type fileTemplate struct {
	Tree  []Node   `yaml:"tree"`
	Files []string `yaml:"files"`
}

type fileProject struct {
	Root  string   `yaml:"root"`
	Tree  []Node   `yaml:"tree"`
	Files []string `yaml:"files"`
}

type fileDefinition struct {
	Version  int                     `yaml:"version"`
	Projects map[string]fileProject  `yaml:"projects"`
	Assets   map[string]fileTemplate `yaml:"assets"`
	Shot     *fileTemplate           `yaml:"shot"`
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Load(definition)
})

// Default returns the registry built from the embedded definition. It is
// loaded on first use and shared afterwards.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Load parses and validates a YAML definition.
func Load(data []byte) (*Registry, error) {
	var def fileDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if def.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrInvalidSchema, def.Version, SchemaVersion)
	}

	r := &Registry{
		projects: make(map[models.ProjectType]ProjectSchema, len(def.Projects)),
		assets:   make(map[models.AssetKind]Template, len(def.Assets)),
	}

	for key, p := range def.Projects {
		pt := models.ProjectType(key)
		if !pt.IsValid() {
			return nil, fmt.Errorf("%w: unknown project type %q", ErrInvalidSchema, key)
		}
		if !strings.Contains(p.Root, PlaceholderProjectCode) {
			return nil, fmt.Errorf("%w: project %s: root pattern %q lacks %s",
				ErrInvalidSchema, key, p.Root, PlaceholderProjectCode)
		}
		tmpl := Template{Tree: p.Tree, Files: p.Files}
		if err := checkTemplate(tmpl, PlaceholderProjectCode); err != nil {
			return nil, fmt.Errorf("%w: project %s: %v", ErrInvalidSchema, key, err)
		}
		r.projects[pt] = ProjectSchema{Type: pt, RootPattern: p.Root, Template: tmpl}
	}

	for key, a := range def.Assets {
		kind := models.AssetKind(key)
		if !kind.IsValid() {
			return nil, fmt.Errorf("%w: unknown asset kind %q", ErrInvalidSchema, key)
		}
		tmpl := Template{Tree: a.Tree, Files: a.Files}
		if err := checkTemplate(tmpl, PlaceholderAssetID); err != nil {
			return nil, fmt.Errorf("%w: asset %s: %v", ErrInvalidSchema, key, err)
		}
		for _, f := range tmpl.Files {
			name := Expand(f, Values{AssetID: sampleAssetID})
			if _, err := naming.ValidateAsset(name); err != nil {
				return nil, fmt.Errorf("%w: asset %s: seed %q: %v", ErrInvalidSchema, key, f, err)
			}
		}
		r.assets[kind] = tmpl
	}

	if def.Shot == nil {
		return nil, fmt.Errorf("%w: missing shot template", ErrInvalidSchema)
	}
	r.shot = Template{Tree: def.Shot.Tree, Files: def.Shot.Files}
	if err := checkTemplate(r.shot, PlaceholderShotID); err != nil {
		return nil, fmt.Errorf("%w: shot: %v", ErrInvalidSchema, err)
	}
	for _, f := range r.shot.Files {
		name := Expand(f, Values{ShotID: sampleShotID})
		if _, err := naming.ValidateShot(name); err != nil {
			return nil, fmt.Errorf("%w: shot seed %q: %v", ErrInvalidSchema, f, err)
		}
	}

	for _, pt := range models.ValidProjectTypes() {
		if _, ok := r.projects[pt]; !ok {
			return nil, fmt.Errorf("%w: missing project type %q", ErrInvalidSchema, pt)
		}
	}
	for _, k := range models.ValidAssetKinds() {
		if _, ok := r.assets[k]; !ok {
			return nil, fmt.Errorf("%w: missing asset kind %q", ErrInvalidSchema, k)
		}
	}

	return r, nil
}

// checkTemplate verifies node names and that every seed file sits in a
// directory of the tree (or at its root) and only uses the allowed placeholder.
func checkTemplate(t Template, allowed string) error {
	if err := checkNodes(t.Tree); err != nil {
		return err
	}
	dirs := t.Dirs()
	for _, f := range t.Files {
		if f == "" || path.IsAbs(f) || path.Clean(f) != f || strings.HasPrefix(f, "..") {
			return fmt.Errorf("seed file %q must be a clean relative path", f)
		}
		rest := strings.ReplaceAll(f, allowed, "")
		if strings.ContainsAny(rest, "{}") {
			return fmt.Errorf("seed file %q uses a placeholder other than %s", f, allowed)
		}
		if dir := path.Dir(f); dir != "." && !slices.Contains(dirs, dir) {
			return fmt.Errorf("seed file %q is outside the tree", f)
		}
	}
	return nil
}

func checkNodes(nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.Name == "" || n.Name == "." || n.Name == ".." || strings.ContainsAny(n.Name, `/\{}`) {
			return fmt.Errorf("invalid directory name %q", n.Name)
		}
		if seen[n.Name] {
			return fmt.Errorf("duplicate directory %q", n.Name)
		}
		seen[n.Name] = true
		if err := checkNodes(n.Children); err != nil {
			return fmt.Errorf("%s: %w", n.Name, err)
		}
	}
	return nil
}

// Project returns the schema for a project type.
func (r *Registry) Project(t models.ProjectType) (ProjectSchema, error) {
	p, ok := r.projects[t]
	if !ok {
		return ProjectSchema{}, fmt.Errorf("%w: project type %q", ErrUnknownSchemaKey, t)
	}
	p.Template = p.Template.clone()
	return p, nil
}

// Asset returns the template for an asset kind.
func (r *Registry) Asset(k models.AssetKind) (Template, error) {
	a, ok := r.assets[k]
	if !ok {
		return Template{}, fmt.Errorf("%w: asset kind %q", ErrUnknownSchemaKey, k)
	}
	return a.clone(), nil
}

// Shot returns the shot template.
func (r *Registry) Shot() Template {
	return r.shot.clone()
}

// Lookup resolves a project type, asset kind, or ShotKey to its template.
func (r *Registry) Lookup(key string) (Template, error) {
	if key == ShotKey {
		return r.Shot(), nil
	}
	if p, ok := r.projects[models.ProjectType(key)]; ok {
		return p.Template.clone(), nil
	}
	if a, ok := r.assets[models.AssetKind(key)]; ok {
		return a.clone(), nil
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownSchemaKey, key)
}

// ProjectTypes returns the defined project types in sorted order.
func (r *Registry) ProjectTypes() []models.ProjectType {
	return slices.Sorted(maps.Keys(r.projects))
}

// AssetKinds returns the defined asset kinds in sorted order.
func (r *Registry) AssetKinds() []models.AssetKind {
	return slices.Sorted(maps.Keys(r.assets))
}
