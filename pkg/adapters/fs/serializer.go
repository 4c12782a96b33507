package fs

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serializer defines how to read and write a specific file format.
type Serializer interface {
	// Normalize converts raw document bytes into canonical JSON.
	Normalize(data []byte) ([]byte, error)
	// Serialize converts the document payload to bytes.
	Serialize(payload any) ([]byte, error)
	// Format names the serializer (e.g. "json").
	Format() string
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// serializerFor picks a serializer by file extension, falling back to JSON.
func serializerFor(path string, serializers map[string]Serializer) Serializer {
	if s, ok := serializers[strings.ToLower(filepath.Ext(path))]; ok {
		return s
	}
	return NewJSONSerializer()
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON documents.
type JSONSerializer struct {
	// Indent is the per-level indentation used when writing.
	Indent string
}

// NewJSONSerializer creates a JSON serializer indenting with four spaces.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "    "}
}

func (s *JSONSerializer) Normalize(data []byte) ([]byte, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return data, nil
}

func (s *JSONSerializer) Serialize(payload any) ([]byte, error) {
	return json.MarshalIndent(payload, "", s.Indent)
}

func (s *JSONSerializer) Format() string { return "json" }

// --- YAML Serializer ---

type YAMLSerializer struct{}

func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Normalize(data []byte) ([]byte, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("yaml is not representable as json: %w", err)
	}
	return out, nil
}

func (s *YAMLSerializer) Serialize(payload any) ([]byte, error) {
	return yaml.Marshal(payload)
}

func (s *YAMLSerializer) Format() string { return "yaml" }
