package template

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
)

// ReadmeTemplate is the embedded template for the project structure README.
const ReadmeTemplate = "README_project_structure.md.tmpl"

// TreeLine is one directory of the rendered tree.
type TreeLine struct {
	Indent string
	Name   string
}

// ReadmeData is the data passed to ReadmeTemplate.
type ReadmeData struct {
	Code                string
	Type                string
	TypeLabel           string
	CreatedAt           string
	GeneratedBy         string
	Author              string
	Studio              string
	Tree                []TreeLine
	AssetExample        string
	ShotExample         string
	AssetTasks          []string
	ShotTasks           []string
	ForbiddenAssetTasks []string
}

// TreeLines converts slash-separated directory paths, parents before
// children, into indented tree lines.
func TreeLines(dirs []string) []TreeLine {
	lines := make([]TreeLine, 0, len(dirs))
	for _, d := range dirs {
		depth := strings.Count(d, "/") + 1
		lines = append(lines, TreeLine{
			Indent: strings.Repeat("  ", depth),
			Name:   path.Base(d),
		})
	}
	return lines
}

// RenderReadme renders the project structure README.
func RenderReadme(r Renderer, data ReadmeData) ([]byte, error) {
	return r.Render(ReadmeTemplate, data)
}

// ReadmeFrontMatter is the metadata block at the top of a generated README.
type ReadmeFrontMatter struct {
	ProjectCode string `yaml:"project_code"`
	ProjectType string `yaml:"project_type"`
	CreatedAt   string `yaml:"created_at"`
	GeneratedBy string `yaml:"generated_by"`
	Author      string `yaml:"author"`
	Studio      string `yaml:"studio"`
}

// SplitReadme separates the YAML front matter from the markdown body.
func SplitReadme(doc []byte) (ReadmeFrontMatter, []byte, error) {
	var fm ReadmeFrontMatter
	body, err := frontmatter.MustParse(bytes.NewReader(doc), &fm)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return fm, doc, ErrNoFrontMatter
		}
		return fm, nil, fmt.Errorf("parse front matter: %w", err)
	}
	return fm, body, nil
}
