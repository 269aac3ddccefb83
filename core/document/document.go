package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for a format or file extension with no codec.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrInvalidNode is returned by Build for a node that cannot become a parameter.
	ErrInvalidNode = errors.New("invalid parameter node")
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file or object name extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Document is the serialized form of a parameter tree. The document itself is
// the unnamed (or named) root compound.
type Document struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Children    []Node `yaml:"children" json:"children" toml:"children"`
}

// Node is one parameter declaration.
//
// Type is one of compound, float, int, string or bool. Any other type is kept as
// an opaque parameter that reports Type as its type name.
type Node struct {
	Name        string         `yaml:"name" json:"name" toml:"name"`
	Type        string         `yaml:"type" json:"type" toml:"type"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Default     any            `yaml:"default,omitempty" json:"default,omitempty" toml:"default,omitempty"`
	Min         *float64       `yaml:"min,omitempty" json:"min,omitempty" toml:"min,omitempty"`
	Max         *float64       `yaml:"max,omitempty" json:"max,omitempty" toml:"max,omitempty"`
	UserData    map[string]any `yaml:"user_data,omitempty" json:"user_data,omitempty" toml:"user_data,omitempty"`
	Children    []Node         `yaml:"children,omitempty" json:"children,omitempty" toml:"children,omitempty"`
}

// Parse decodes a document in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads and parses a document, choosing the format by extension.
func LoadFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes v (a Document or a value map) in the given format.
func Marshal(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Unmarshal decodes data in the given format into v.
func Unmarshal(data []byte, format Format, v any) error {
	return unmarshal(data, format, v)
}

func unmarshal(data []byte, format Format, v any) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatTOML:
		_, err = toml.Decode(string(data), v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", format, err)
	}
	return nil
}
