package models

import (
	"fmt"
	"strings"
)

// ProjectType represents the template a project was created from.
type ProjectType string

const (
	ProjectTypeSingleShot   ProjectType = "single_shot"
	ProjectTypeShortFilm    ProjectType = "short_film"
	ProjectTypeAssetLibrary ProjectType = "asset_library"

	// ProjectTypeUnknown is only produced by classification; it is never creatable.
	ProjectTypeUnknown ProjectType = "unknown"
)

// ValidProjectTypes returns the creatable project types in display order.
func ValidProjectTypes() []ProjectType {
	return []ProjectType{ProjectTypeSingleShot, ProjectTypeShortFilm, ProjectTypeAssetLibrary}
}

// IsValid reports whether the project type is creatable.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeSingleShot, ProjectTypeShortFilm, ProjectTypeAssetLibrary:
		return true
	}
	return false
}

// Label returns a human-readable description of the project type.
func (t ProjectType) Label() string {
	switch t {
	case ProjectTypeSingleShot:
		return "Single shot practice"
	case ProjectTypeShortFilm:
		return "Multi-shot short film"
	case ProjectTypeAssetLibrary:
		return "Asset library"
	default:
		return "Unknown"
	}
}

// ParseProjectType converts a user-supplied string to a ProjectType.
// Hyphens are accepted in place of underscores.
func ParseProjectType(s string) (ProjectType, error) {
	t := ProjectType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown project type %q: must be one of: %s", s, joinProjectTypes())
	}
	return t, nil
}

func joinProjectTypes() string {
	types := ValidProjectTypes()
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
