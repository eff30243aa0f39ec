package parsers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sdejongh/configdiff/internal/platform"
	"github.com/sdejongh/configdiff/pkg/logging"
)

// Registry maps format names and file extensions to parsers.
//
// It is an explicit, constructed-once lookup table rather than package
// level mutable state, so callers and tests can build independent
// registries.
type Registry struct {
	byName map[string]Parser
	byExt  map[string]Parser
}

// NewRegistry returns a registry with all built-in parsers registered
func NewRegistry() *Registry {
	reg := &Registry{
		byName: make(map[string]Parser),
		byExt:  make(map[string]Parser),
	}

	reg.Register(NewJSONParser())
	reg.Register(NewYAMLParser())
	reg.Register(NewTOMLParser())
	reg.Register(NewINIParser())

	return reg
}

// Register adds a parser under its format name and all its extensions
func (r *Registry) Register(p Parser) {
	r.byName[p.FormatName()] = p
	for _, ext := range p.Extensions() {
		r.byExt[ext] = p
	}
	logger := logging.GetLogger("parsers")
	logger.Debug().Str("format", p.FormatName()).Msg("registered parser")
}

// ByFormat returns the parser for the given format name
func (r *Registry) ByFormat(name string) (Parser, error) {
	parser, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %q (supported: %s)",
			name, strings.Join(r.Formats(), ", "))
	}
	return parser, nil
}

// DetectFormat returns the format name for path based on its extension
func (r *Registry) DetectFormat(path string) (string, error) {
	ext := platform.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot detect format for %s: no file extension (supported: %s)",
			path, strings.Join(r.Extensions(), ", "))
	}

	parser, ok := r.byExt[ext]
	if !ok {
		return "", fmt.Errorf("unsupported file extension: %q (supported: %s)",
			ext, strings.Join(r.Extensions(), ", "))
	}
	return parser.FormatName(), nil
}

// Formats returns all registered format names, sorted
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.byName))
	for name := range r.byName {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// Extensions returns all registered file extensions, sorted
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
