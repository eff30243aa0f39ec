package parsers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLParser decodes YAML configuration files
type YAMLParser struct{}

// NewYAMLParser creates a YAML parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// FormatName returns "yaml"
func (p *YAMLParser) FormatName() string {
	return "yaml"
}

// Extensions returns the extensions handled by the YAML parser
func (p *YAMLParser) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Parse reads and decodes a YAML file.
// An empty document decodes to an empty mapping, not nil.
func (p *YAMLParser) Parse(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if decoded == nil {
		return map[string]any{}, nil
	}

	normalized := Normalize(decoded)
	mapping, ok := normalized.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a YAML mapping at top level in %s, got %T", path, decoded)
	}

	return mapping, nil
}
