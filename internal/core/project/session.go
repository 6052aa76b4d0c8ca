package project

import "github.com/studio-scaffolder/scaffolder/pkg/models"

// Session is the single-slot cache of the most recently initialized or
// detected project. The embedding layer owns it and passes it where needed;
// the last write wins.
type Session struct {
	root        string
	projectType models.ProjectType
}

// NewSession returns a session, optionally seeded with a remembered root.
func NewSession(root string, t models.ProjectType) *Session {
	return &Session{root: root, projectType: t}
}

// Remember replaces the cached root and type.
func (s *Session) Remember(root string, t models.ProjectType) {
	s.root = root
	s.projectType = t
}

// Forget clears the cache.
func (s *Session) Forget() {
	s.root = ""
	s.projectType = ""
}

// Root returns the remembered root, or "" if none.
func (s *Session) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// ProjectType returns the type recorded with the remembered root.
func (s *Session) ProjectType() models.ProjectType {
	if s == nil {
		return ""
	}
	return s.projectType
}
