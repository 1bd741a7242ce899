// Package config loads optional .srcmap.yaml tool configuration. The
// codec itself takes no configuration; this only supplies CLI defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".srcmap.yaml"

// Config holds CLI defaults; command-line flags override every field.
type Config struct {
	// File is the default declared name of the generated file.
	File string `yaml:"file"`
	// StripPrefix is removed from every source path on output.
	StripPrefix string `yaml:"strip_prefix"`
	// Indent is the JSON indent for printed/written documents.
	Indent string `yaml:"indent"`
}

// Load reads a config file. An empty path means the default file name in
// the working directory, and a missing default file yields zero config;
// an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// IndentOrDefault returns the configured indent, falling back to two
// spaces.
func (c *Config) IndentOrDefault() string {
	if c.Indent == "" {
		return "  "
	}
	return c.Indent
}
