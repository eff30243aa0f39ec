// Package output renders a models.DiffResult for humans (colourized text)
// or machines (JSON, YAML).
package output

import (
	"fmt"

	"github.com/sdejongh/configdiff/pkg/models"
)

// Formatter defines the interface for output formatting.
// Implementations include text, JSON and YAML formatters.
type Formatter interface {
	// Format renders result as a string ready for display or file
	// output, without a trailing newline
	Format(result *models.DiffResult) (string, error)

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for the given name.
// colorEnabled only affects the text formatter.
func New(name string, colorEnabled bool) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(colorEnabled), nil
	case "json":
		return NewJSONFormatter(), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q (choose from: json, text, yaml)", name)
	}
}

// payload is the machine-readable projection of a DiffResult shared by
// the JSON and YAML formatters
type payload struct {
	Summary      map[string]int `json:"summary" yaml:"summary"`
	TotalChanges int            `json:"total_changes" yaml:"total_changes"`
	Changes      []change       `json:"changes" yaml:"changes"`
	Metadata     map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// change mirrors one ChangeEntry. Old and New are pointers so that a
// removed entry has no "new" field at all and an added entry no "old"
// field, while present-but-null values still serialize.
type change struct {
	Path string `json:"path" yaml:"path"`
	Type string `json:"type" yaml:"type"`
	Old  *any   `json:"old,omitempty" yaml:"old,omitempty"`
	New  *any   `json:"new,omitempty" yaml:"new,omitempty"`
}

func buildPayload(result *models.DiffResult) payload {
	summary := make(map[string]int)
	for kind, count := range result.Summary() {
		summary[string(kind)] = count
	}

	changes := make([]change, 0, len(result.Entries))
	for _, entry := range result.Entries {
		c := change{
			Path: entry.Path,
			Type: string(entry.Kind),
		}
		if entry.HasOld() {
			oldValue := entry.OldValue
			c.Old = &oldValue
		}
		if entry.HasNew() {
			newValue := entry.NewValue
			c.New = &newValue
		}
		changes = append(changes, c)
	}

	p := payload{
		Summary:      summary,
		TotalChanges: len(result.Entries),
		Changes:      changes,
	}
	if len(result.Metadata) > 0 {
		p.Metadata = result.Metadata
	}
	return p
}
