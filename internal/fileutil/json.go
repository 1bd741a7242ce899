package fileutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalPretty renders value as indented JSON with a trailing newline,
// the shape expected by editors and diff tools for map files on disk.
func MarshalPretty(value any, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// PrintJSON writes value to w as indented JSON.
func PrintJSON(w io.Writer, value any, indent string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", indent)
	return encoder.Encode(value)
}

// WriteJSON writes value to path as indented JSON, skipping the write when
// the file already holds identical content. Reports whether it wrote.
func WriteJSON(path string, value any, indent string) (bool, error) {
	data, err := MarshalPretty(value, indent)
	if err != nil {
		return false, err
	}

	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}
