package output

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdejongh/configdiff/pkg/models"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format renders the result as a YAML document
func (f *YAMLFormatter) Format(result *models.DiffResult) (string, error) {
	data, err := yaml.Marshal(buildPayload(result))
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML output: %w", err)
	}

	return strings.TrimSuffix(string(data), "\n"), nil
}

// Name returns the formatter name
func (f *YAMLFormatter) Name() string {
	return "yaml"
}
