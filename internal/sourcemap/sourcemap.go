// Package sourcemap builds source map v3 structures with VLQ-encoded
// mappings and supports the dual embedding downstream consumers need: a
// standalone JSON structure and an inline data-URI comment.
package sourcemap

import (
	"encoding/base64"
	"encoding/json"
)

// Map is a source map v3 document.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// JSON serializes the map.
func (m *Map) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// InlineComment renders the map as a trailing sourceMappingURL comment.
func (m *Map) InlineComment() (string, error) {
	data, err := m.JSON()
	if err != nil {
		return "", err
	}
	enc := base64.StdEncoding.EncodeToString(data)
	return "//# sourceMappingURL=data:application/json;charset=utf-8;base64," + enc, nil
}
