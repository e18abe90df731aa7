// internal/hierarchy/hierarchy.go
// Package hierarchy defines the ordered grouping specifications that drive
// drilldown aggregation, plus the named presets shipped with the toolkit.
package hierarchy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level pairs a category column name with its display label.
type Level struct {
	Column string `yaml:"column"`
	Label  string `yaml:"label"`
}

// Spec is an ordered sequence of grouping levels, outermost first.
type Spec struct {
	Name   string  `yaml:"name"`
	Levels []Level `yaml:"levels"`
}

// ValidationError reports a malformed hierarchy specification.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "invalid hierarchy: " + e.Msg }

// Columns returns the column names in level order.
func (s Spec) Columns() []string {
	cols := make([]string, len(s.Levels))
	for i, lvl := range s.Levels {
		cols[i] = lvl.Column
	}
	return cols
}

// Validate rejects empty specs and duplicate column names. It is called
// before any aggregation work begins so bad specs never partially compute.
func (s Spec) Validate() error {
	if len(s.Levels) == 0 {
		return &ValidationError{Msg: "no levels defined"}
	}
	seen := make(map[string]bool, len(s.Levels))
	for _, lvl := range s.Levels {
		col := strings.TrimSpace(lvl.Column)
		if col == "" {
			return &ValidationError{Msg: "level with empty column name"}
		}
		if seen[col] {
			return &ValidationError{Msg: fmt.Sprintf("duplicate column %q", col)}
		}
		seen[col] = true
	}
	return nil
}

// Presets returns the built-in hierarchy specs keyed by name.
func Presets() map[string]Spec {
	return map[string]Spec{
		"clinical": {
			Name: "clinical",
			Levels: []Level{
				{Column: "domain", Label: "Domain"},
				{Column: "subdomain", Label: "Subdomain"},
				{Column: "narrow", Label: "Narrow Ability"},
				{Column: "scale", Label: "Scale"},
			},
		},
		"pass_model": {
			Name: "pass_model",
			Levels: []Level{
				{Column: "pass", Label: "PASS Process"},
				{Column: "domain", Label: "Domain"},
				{Column: "subdomain", Label: "Subdomain"},
				{Column: "scale", Label: "Scale"},
			},
		},
		"rating_scale": {
			Name: "rating_scale",
			Levels: []Level{
				{Column: "domain", Label: "Domain"},
				{Column: "subdomain", Label: "Subdomain"},
				{Column: "scale", Label: "Scale"},
			},
		},
	}
}

// Lookup resolves a preset by name, then any specs loaded from an overrides
// file. Unknown names fail with a ValidationError listing the known presets.
func Lookup(name string, overrides map[string]Spec) (Spec, error) {
	if spec, ok := overrides[name]; ok {
		if err := spec.Validate(); err != nil {
			return Spec{}, err
		}
		return spec, nil
	}
	presets := Presets()
	if spec, ok := presets[name]; ok {
		return spec, nil
	}
	known := make([]string, 0, len(presets))
	for n := range presets {
		known = append(known, n)
	}
	sort.Strings(known)
	return Spec{}, &ValidationError{Msg: fmt.Sprintf("unknown preset %q (built-in presets: %s)", name, strings.Join(known, ", "))}
}

// LoadOverrides reads additional hierarchy specs from a YAML file. The file
// holds a list of specs; names shadow built-in presets.
func LoadOverrides(path string) (map[string]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read hierarchy presets %q: %w", path, err)
	}
	var specs []Spec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("could not parse hierarchy presets %q: %w", path, err)
	}
	out := make(map[string]Spec, len(specs))
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q in %s: %w", spec.Name, path, err)
		}
		out[spec.Name] = spec
	}
	return out, nil
}
