// Package config reads the optional per-dataset validation settings. A
// dataset may carry a contentcheck.yaml at its root to override the default
// coordinate bounds; everything else about validation is fixed.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/IllyaZhihunou/content/pkg/constants"
)

//go:embed schemas/config_schema.json
var configSchema string

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Bounds is the geographic box stop coordinates must fall in.
type Bounds struct {
	Latitude  Range `yaml:"latitude" json:"latitude"`
	Longitude Range `yaml:"longitude" json:"longitude"`
}

// Config holds the per-dataset validation settings.
type Config struct {
	Bounds Bounds `yaml:"bounds" json:"bounds"`
}

// Default returns the settings used when a dataset has no config file. The
// bounds cover the Novopolotsk area the original dataset describes.
func Default() *Config {
	return &Config{
		Bounds: Bounds{
			Latitude:  Range{Min: 55.4, Max: 55.6},
			Longitude: Range{Min: 28.4, Max: 28.9},
		},
	}
}

// Load reads the dataset settings from the config file in dir, falling back
// to Default when the file does not exist. Axes absent from the file keep
// their default ranges.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, constants.ConfigFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates config file content. The name only identifies
// the source in error messages.
func Parse(name string, data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", name, err)
	}
	if err := validateWithSchema(raw); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", name, err)
	}

	for _, axis := range []struct {
		name string
		r    Range
	}{
		{"latitude", cfg.Bounds.Latitude},
		{"longitude", cfg.Bounds.Longitude},
	} {
		if axis.r.Min > axis.r.Max {
			return nil, fmt.Errorf("invalid config %s: %s min %v exceeds max %v", name, axis.name, axis.r.Min, axis.r.Max)
		}
	}
	return cfg, nil
}

// validateWithSchema checks the raw document against the embedded JSON
// schema, so unknown keys and malformed ranges are rejected with a message
// naming the offending property.
func validateWithSchema(raw map[string]any) error {
	compiler := jsonschema.NewCompiler()

	var schemaDoc any
	if err := json.Unmarshal([]byte(configSchema), &schemaDoc); err != nil {
		return fmt.Errorf("failed to parse embedded schema: %w", err)
	}

	schemaURL := "http://contentcheck.local/config_schema.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	// Round-trip through JSON to normalize YAML types for the validator.
	if raw == nil {
		raw = make(map[string]any)
	}
	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(rawJSON, &normalized); err != nil {
		return fmt.Errorf("failed to normalize config: %w", err)
	}

	return schema.Validate(normalized)
}
