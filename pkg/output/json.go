package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sdejongh/configdiff/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format renders the result as indented JSON
func (f *JSONFormatter) Format(result *models.DiffResult) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(buildPayload(result)); err != nil {
		return "", fmt.Errorf("failed to encode JSON output: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
