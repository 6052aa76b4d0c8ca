package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates
var embedded embed.FS

// EmbeddedFS returns the built-in templates rooted at the templates directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return sub
}

// funcMap is sprig's text function set.
func funcMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

// unexpandedTokenPattern detects schema placeholders and template actions
// left in rendered output.
var unexpandedTokenPattern = regexp.MustCompile(`\{(project_code|asset_id|shot_id)\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data. It returns
	// ErrMissingTemplateKey if a key is missing and ErrUnexpandedToken if
	// placeholders remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by fsys. A nil fsys uses the
// embedded templates.
func NewRenderer(fsys fs.FS) Renderer {
	if fsys == nil {
		fsys = EmbeddedFS()
	}
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(funcMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}
