// Package outline turns a universal-ctags NDJSON tag stream into class
// outlines, rendered either as indented text or as PlantUML.
package outline

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Tag is one record from the ctags JSON-lines output. Fields beyond the
// core set are optional and may be absent for any given row.
type Tag struct {
	Type      string          `json:"_type"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Path      string          `json:"path"`
	Line      int             `json:"line"`
	Scope     string          `json:"scope,omitempty"`
	ScopeKind string          `json:"scopeKind,omitempty"`
	Access    string          `json:"access,omitempty"`
	TypeRef   json.RawMessage `json:"typeref,omitempty"`
	FieldType string          `json:"type,omitempty"`
	Signature string          `json:"signature,omitempty"`
}

// ReadTags decodes an NDJSON tag stream. Lines that are blank, malformed,
// or not _type=="tag" are skipped; an empty stream yields an empty slice.
// Lines have no length limit — ctags can emit very long signature fields.
func ReadTags(r io.Reader) ([]Tag, error) {
	var tags []Tag
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lineNo++
			var tag Tag
			if jsonErr := json.Unmarshal([]byte(trimmed), &tag); jsonErr != nil {
				slog.Debug("outline.tags.skip_malformed", "line", lineNo, "error", jsonErr)
			} else if tag.Type == "tag" {
				tags = append(tags, tag)
			}
		}
		if err == io.EOF {
			return tags, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// LoadTags reads a tag file produced by the generator.
func LoadTags(path string) ([]Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTags(f)
}

// typeName resolves a tag's display type. A structured typeref takes
// precedence over the flat type field; string typerefs like
// "typename:int" keep only the trailing colon-delimited segment. An
// empty typeref segment falls back to the flat field.
func typeName(t Tag) string {
	if len(t.TypeRef) > 0 {
		var s string
		if err := json.Unmarshal(t.TypeRef, &s); err == nil {
			if i := strings.LastIndex(s, ":"); i >= 0 {
				s = s[i+1:]
			}
			if s != "" {
				return s
			}
		} else {
			var obj struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(t.TypeRef, &obj); err == nil && obj.Name != "" {
				return obj.Name
			}
		}
	}
	return t.FieldType
}
