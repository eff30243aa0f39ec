package parsers

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser decodes TOML configuration files
type TOMLParser struct{}

// NewTOMLParser creates a TOML parser
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// FormatName returns "toml"
func (p *TOMLParser) FormatName() string {
	return "toml"
}

// Extensions returns the extensions handled by the TOML parser
func (p *TOMLParser) Extensions() []string {
	return []string{".toml"}
}

// Parse reads and decodes a TOML file.
// TOML documents are mappings by construction, so no top-level check is
// needed.
func (p *TOMLParser) Parse(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var mapping map[string]any
	if err := toml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("invalid TOML in %s: %w", path, err)
	}

	if mapping == nil {
		mapping = map[string]any{}
	}

	return NormalizeMapping(mapping), nil
}
