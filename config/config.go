package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/contextkit/session"
)

// ErrUnsupportedFormat indicates a config file extension that is neither
// YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Load reads a session configuration from a YAML (.yaml, .yml) or TOML
// (.toml) file, chosen by extension, and validates it. Fields left out of
// the file keep their documented defaults; max_tokens is required.
func Load(path string) (session.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return session.Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes and validates configuration bytes in the format implied by
// ext (".yaml", ".yml", or ".toml").
func Parse(data []byte, ext string) (session.Config, error) {
	var cfg session.Config

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return session.Config{}, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return session.Config{}, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		return session.Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return session.Config{}, err
	}
	return cfg, nil
}

// Schema returns the JSON Schema for the configuration file, for editor
// integration and external validation of config files.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return reflector.Reflect(&session.Config{})
}

// SchemaJSON returns the configuration schema as indented JSON, suitable
// for writing to a .schema.json file.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
