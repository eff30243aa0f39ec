package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/sdejongh/configdiff/pkg/models"
)

// TextFormatter formats output in human-readable format with optional
// colour
type TextFormatter struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
	bold   *color.Color
}

// NewTextFormatter creates a text formatter. enableColor overrides the
// colour library's own terminal detection, so the caller decides based on
// the actual output destination.
func NewTextFormatter(enableColor bool) *TextFormatter {
	f := &TextFormatter{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
		bold:   color.New(color.Bold),
	}

	for _, c := range []*color.Color{f.green, f.red, f.yellow, f.cyan, f.bold} {
		if enableColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

// Format renders the result as a summary header followed by one block per
// change
func (f *TextFormatter) Format(result *models.DiffResult) (string, error) {
	if !result.HasChanges() {
		return f.green.Sprint("No differences found."), nil
	}

	var lines []string
	lines = append(lines, f.bold.Sprintf("Found %d change(s): %s",
		len(result.Entries), f.summaryLine(result)))
	lines = append(lines, "")

	for _, entry := range result.Entries {
		switch entry.Kind {
		case models.KindAdded:
			lines = append(lines, f.green.Sprintf("  + %s: %s",
				entry.Path, renderValue(entry.NewValue)))

		case models.KindRemoved:
			lines = append(lines, f.red.Sprintf("  - %s: %s",
				entry.Path, renderValue(entry.OldValue)))

		case models.KindModified:
			lines = append(lines, f.yellow.Sprintf("  ~ %s:", entry.Path))
			lines = append(lines, f.transition(entry))

		case models.KindTypeChanged:
			lines = append(lines, f.yellow.Sprintf("  ! %s (type: %s %s %s):",
				entry.Path,
				typeName(entry.OldValue),
				f.cyan.Sprint("→"),
				typeName(entry.NewValue)))
			lines = append(lines, f.transition(entry))
		}
	}

	return strings.Join(lines, "\n"), nil
}

// Name returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}

// summaryLine renders counts per kind, sorted by kind name for stable
// output
func (f *TextFormatter) summaryLine(result *models.DiffResult) string {
	summary := result.Summary()

	kinds := make([]string, 0, len(summary))
	for kind := range summary {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%d %s", summary[models.ChangeKind(kind)], kind))
	}
	return strings.Join(parts, ", ")
}

// transition renders the indented "old → new" line shared by modified and
// type-changed entries
func (f *TextFormatter) transition(entry models.ChangeEntry) string {
	return fmt.Sprintf("      %s %s %s",
		f.red.Sprint(renderValue(entry.OldValue)),
		f.cyan.Sprint("→"),
		f.green.Sprint(renderValue(entry.NewValue)))
}

// renderValue prints a tree value for humans. Strings are quoted so that
// "42" and 42 look different.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// typeName returns the human name of a tree value's type
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "float"
	case string:
		return "string"
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}
