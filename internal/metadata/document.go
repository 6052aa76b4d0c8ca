package metadata

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// SchemaVersion is the document version written by this package.
const SchemaVersion = 1

// CreatedWith identifies documents written by this tool.
const CreatedWith = "studio_project_scaffolder"

// DateLayout is the format of Project.CreatedAt.
const DateLayout = "2006-01-02"

// Project is the "project" section of the document.
type Project struct {
	Code          string `json:"code"`
	Type          string `json:"type"`
	SchemaVersion int    `json:"schema_version"`
	CreatedAt     string `json:"created_at"`
	CreatedWith   string `json:"created_with"`
}

// Author is the "author" section of the document.
type Author struct {
	Name      string `json:"name"`
	Studio    string `json:"studio"`
	Role      string `json:"role"`
	Contact   string `json:"contact"`
	Copyright string `json:"copyright"`
}

// Metadata is the full project.json document. Top-level keys other than
// "project" and "author" are carried through unchanged on rewrite.
type Metadata struct {
	Project Project
	Author  Author

	extra map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if p, ok := raw["project"]; ok {
		if err := json.Unmarshal(p, &m.Project); err != nil {
			return err
		}
		delete(raw, "project")
	}
	if a, ok := raw["author"]; ok {
		if err := json.Unmarshal(a, &m.Author); err != nil {
			return err
		}
		delete(raw, "author")
	}
	if len(raw) > 0 {
		m.extra = raw
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Keys are emitted as project,
// author, then any extra keys in sorted order.
func (m Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		b, err := marshalNoEscape(v)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}

	if err := write("project", m.Project); err != nil {
		return nil, err
	}
	if err := write("author", m.Author); err != nil {
		return nil, err
	}
	for _, k := range slices.Sorted(maps.Keys(m.extra)) {
		if err := write(k, m.extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape marshals v leaving <, > and & unescaped.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encode renders the document as written to disk: two-space indent,
// non-ASCII and HTML characters unescaped.
func encode(m *Metadata) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// upgrade brings an older document up to SchemaVersion in memory. Documents
// from a newer writer keep their version so a rewrite does not downgrade them.
func upgrade(m *Metadata) {
	if m.Project.SchemaVersion < 1 {
		// Version 0 documents predate the schema_version key; the layout is
		// otherwise identical.
		m.Project.SchemaVersion = 1
	}
}
