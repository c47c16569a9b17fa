// Package formats renders comparison reports. Formats register themselves
// by name in a package-level registry; callers look them up with Get.
package formats

import (
	"fmt"
	"sort"
	"time"
)

// Report describes one completed comparison for rendering.
type Report struct {
	RunID   string        `json:"run_id" yaml:"run_id"`
	SourceA string        `json:"source_a" yaml:"source_a"`
	SourceB string        `json:"source_b" yaml:"source_b"`
	Length  int           `json:"length" yaml:"length"`
	Text    string        `json:"text" yaml:"text"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Truncate returns a copy of the report whose Text is capped at max runes.
// Length is left untouched so the true match length stays visible.
// max <= 0 means no truncation.
func (r Report) Truncate(max int) Report {
	if max <= 0 {
		return r
	}
	runes := []rune(r.Text)
	if len(runes) > max {
		r.Text = string(runes[:max])
	}
	return r
}

// RenderFormat defines how a report is serialized for output.
type RenderFormat struct {
	// Name is the format identifier (lowercase alphanumeric)
	Name string

	// Render converts the report into its output representation
	Render func(Report) (string, error)
}

// registry holds all available render formats
var registry = make(map[string]*RenderFormat)

// Register adds a render format to the registry.
func Register(format *RenderFormat) error {
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric", format.Name)
	}
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}
	registry[format.Name] = format
	return nil
}

// Get returns a render format by name.
func Get(name string) (*RenderFormat, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q (available: %v)", name, List())
	}
	return format, nil
}

// isValidFormatName checks if a format name is valid
func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// List returns all registered format names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// Built-in formats. Registration can only collide if a format name is
	// duplicated in this package, so failures are programmer errors.
	for _, f := range []*RenderFormat{Text, JSON, YAML} {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}
