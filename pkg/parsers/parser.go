// Package parsers decodes configuration files into the tree shape the
// diff engine consumes: map[string]any for mappings, []any for sequences,
// and nil, bool, int64, float64 or string for scalars.
//
// Every decoder guarantees a mapping at the top level and runs its result
// through Normalize, so numeric values carry the same type tag no matter
// which syntax they came from.
package parsers

// Parser decodes one configuration syntax
type Parser interface {
	// Parse reads the file at path and returns the normalized
	// top-level mapping
	Parse(path string) (map[string]any, error)

	// FormatName returns the canonical format name (e.g. "json")
	FormatName() string

	// Extensions returns the file extensions this parser handles,
	// including the leading dot
	Extensions() []string
}
