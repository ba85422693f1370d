package definition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition is returned for definitions that cannot be built.
var ErrInvalidDefinition = errors.New("invalid definition")

// Format is the syntax of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension. JSON is read as YAML.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrInvalidDefinition, filepath.Ext(path))
	}
}

// LoadFile loads, validates and normalizes the definition at path.
func LoadFile(path string) (*PackageDef, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data, applies defaults and validates the result.
func Parse(data []byte, format Format) (*PackageDef, error) {
	var def PackageDef

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &def)
	case FormatTOML:
		err = toml.Unmarshal(data, &def)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidDefinition, format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s definition: %w", format, err)
	}

	applyDefaults(&def)

	if err := Validate(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

// applyDefaults trims names so that stray spaces never reach the output.
func applyDefaults(def *PackageDef) {
	def.Name = strings.TrimSpace(def.Name)

	for i := range def.Modules {
		m := &def.Modules[i]
		m.Name = strings.TrimSpace(m.Name)

		for j := range m.Classes {
			c := &m.Classes[j]
			c.Name = strings.TrimSpace(c.Name)
			c.Super = strings.TrimSpace(c.Super)
		}
	}
}

// Marshal serializes a definition to YAML.
func Marshal(def *PackageDef) ([]byte, error) {
	return yaml.Marshal(def)
}
