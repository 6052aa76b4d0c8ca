package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

func fixedClock(day string) Option {
	return WithClock(func() time.Time {
		t, _ := time.Parse(DateLayout, day)
		return t
	})
}

func TestReadAbsent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := NewStore(nil)

	m, err := s.Read(root)
	require.NoError(t, err)
	assert.Nil(t, m, "no marker")

	require.NoError(t, EnsureMarker(root))
	m, err = s.Read(root)
	require.NoError(t, err)
	assert.Nil(t, m, "marker without document")
}

func TestReadMalformedIsAbsent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, EnsureMarker(root))
	require.NoError(t, os.WriteFile(DocumentPath(root), []byte("{not json"), 0o644))

	m, err := NewStore(nil).Read(root)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestWriteCreates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := NewStore(nil, fixedClock("2024-03-01"))

	m, err := s.Write(root, Fields{Code: "my_film", Type: models.ProjectTypeShortFilm, AuthorName: "Ana"})
	require.NoError(t, err)

	assert.True(t, IsProjectRoot(root))
	assert.Equal(t, "my_film", m.Project.Code)
	assert.Equal(t, "short_film", m.Project.Type)
	assert.Equal(t, SchemaVersion, m.Project.SchemaVersion)
	assert.Equal(t, "2024-03-01", m.Project.CreatedAt)
	assert.Equal(t, CreatedWith, m.Project.CreatedWith)

	info, err := os.Stat(MarkerPath(root))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteMergesPartialUpdates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := NewStore(nil, fixedClock("2024-03-01")).Write(root, Fields{
		Code:   "my_film",
		Type:   models.ProjectTypeShortFilm,
		Studio: "North",
	})
	require.NoError(t, err)

	later := NewStore(nil, fixedClock("2025-01-15"))
	_, err = later.Write(root, Fields{AuthorName: "Ana"})
	require.NoError(t, err)

	m, err := later.Read(root)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "my_film", m.Project.Code)
	assert.Equal(t, "short_film", m.Project.Type)
	assert.Equal(t, "North", m.Author.Studio)
	assert.Equal(t, "Ana", m.Author.Name)
	assert.Equal(t, "2024-03-01", m.Project.CreatedAt, "created_at is immutable")
}

func TestWriteFormat(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := NewStore(nil, fixedClock("2024-03-01")).Write(root, Fields{
		Code:      "film",
		Type:      models.ProjectTypeSingleShot,
		Studio:    "Estúdio <Norte> & Co",
		Copyright: "© 2024",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(DocumentPath(root))
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "{\n  \"project\": {\n    \"code\": \"film\""), text)
	assert.Contains(t, text, "Estúdio <Norte> & Co")
	assert.Contains(t, text, "© 2024")
	assert.Less(t, strings.Index(text, `"project"`), strings.Index(text, `"author"`))
}

func TestExtraKeysSurvive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, EnsureMarker(root))
	doc := `{"project":{"code":"old","type":"single_shot","schema_version":1,"created_at":"2020-01-01"},"pipeline":{"fps":24}}`
	require.NoError(t, os.WriteFile(DocumentPath(root), []byte(doc), 0o644))

	_, err := NewStore(nil).Write(root, Fields{Role: "lead"})
	require.NoError(t, err)

	data, err := os.ReadFile(DocumentPath(root))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pipeline": {`)
	assert.Contains(t, string(data), `"fps": 24`)
	assert.Contains(t, string(data), `"created_at": "2020-01-01"`)
}

func TestUpgrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want int
	}{
		{"missing version", `{"project":{"code":"a"}}`, 1},
		{"current", `{"project":{"code":"a","schema_version":1}}`, 1},
		{"newer kept", `{"project":{"code":"a","schema_version":3}}`, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			require.NoError(t, EnsureMarker(root))
			require.NoError(t, os.WriteFile(DocumentPath(root), []byte(tt.doc), 0o644))

			s := NewStore(nil)
			m, err := s.Read(root)
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.Equal(t, tt.want, m.Project.SchemaVersion)

			m, err = s.Write(root, Fields{Contact: "a@b.c"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Project.SchemaVersion)
		})
	}
}

func TestWriteFailsOnMissingRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "missing")
	_, err := NewStore(nil).Write(root, Fields{Code: "x"})
	assert.ErrorIs(t, err, ErrWriteFailed)
}
