package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// JSONParser decodes JSON configuration files
type JSONParser struct{}

// NewJSONParser creates a JSON parser
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// FormatName returns "json"
func (p *JSONParser) FormatName() string {
	return "json"
}

// Extensions returns the extensions handled by the JSON parser
func (p *JSONParser) Extensions() []string {
	return []string{".json"}
}

// Parse reads and decodes a JSON file.
// Numbers are decoded via json.Number so that integer and float literals
// keep distinct type tags.
func (p *JSONParser) Parse(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	mapping, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object at top level in %s, got %T", path, decoded)
	}

	return NormalizeMapping(mapping), nil
}
