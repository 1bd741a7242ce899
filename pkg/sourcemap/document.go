// Package sourcemap implements the source map v3 codec: decoding a
// mappings string into a queryable position index, encoding an index back
// into a complete document, and composing two maps produced by successive
// translation passes into one.
package sourcemap

import (
	"encoding/json"
	"fmt"
)

// Version is the only source map format version this package handles.
const Version = 3

// Document is the JSON envelope of a source map v3 file. Sources and
// Names are order-significant: segment indices in Mappings resolve
// against their positions.
type Document struct {
	Version   int      `json:"version"`
	File      string   `json:"file,omitempty"`
	Sources   []string `json:"sources"`
	Names     []string `json:"names"`
	Mappings  string   `json:"mappings"`
	LineCount int      `json:"lineCount,omitempty"`
}

// ParseDocument unmarshals a source map document and rejects any format
// version other than 3.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse source map document: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("unsupported source map version %d (want %d)", doc.Version, Version)
	}
	return &doc, nil
}
