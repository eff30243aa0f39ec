package parsers

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// INIParser decodes INI-style configuration files.
//
// Sections flatten into a two-level mapping of section name to key/value
// pairs. INI has no scalar types, so every value stays a string; comparing
// an INI file against a typed format will therefore report type changes
// for numeric-looking values.
type INIParser struct{}

// NewINIParser creates an INI parser
func NewINIParser() *INIParser {
	return &INIParser{}
}

// FormatName returns "ini"
func (p *INIParser) FormatName() string {
	return "ini"
}

// Extensions returns the extensions handled by the INI parser
func (p *INIParser) Extensions() []string {
	return []string{".ini", ".cfg", ".conf"}
}

// Parse reads and decodes an INI file.
// An empty file decodes to an empty mapping. The default section is
// included only when it actually holds keys.
func (p *INIParser) Parse(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("invalid INI in %s: %w", path, err)
	}

	result := map[string]any{}
	for _, section := range file.Sections() {
		keys := section.KeysHash()
		if section.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}

		values := make(map[string]any, len(keys))
		for key, value := range keys {
			values[key] = value
		}
		result[section.Name()] = values
	}

	return result, nil
}
