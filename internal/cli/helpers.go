// internal/cli/helpers.go
package neuroscore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mwiater/neuroscore/internal/aggregate"
	"github.com/mwiater/neuroscore/internal/dataset"
	"github.com/mwiater/neuroscore/internal/hierarchy"
	"github.com/mwiater/neuroscore/internal/registry"
	"github.com/mwiater/neuroscore/internal/scoring"
)

// loadObservations reads a dataset file, choosing the loader by extension.
func loadObservations(path string, opts dataset.Options) ([]aggregate.Observation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return dataset.LoadParquet(path)
	case ".csv":
		return dataset.LoadCSV(path, opts)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (expected .csv or .parquet)", filepath.Ext(path))
	}
}

// resolveHierarchy looks up the active hierarchy preset, merging in any
// configured preset overrides file.
func resolveHierarchy() (hierarchy.Spec, error) {
	var overrides map[string]hierarchy.Spec
	if path := PresetsPath(); path != "" {
		loaded, err := hierarchy.LoadOverrides(path)
		if err != nil {
			return hierarchy.Spec{}, fmt.Errorf("loading presets: %w", err)
		}
		overrides = loaded
	}
	return hierarchy.Lookup(HierarchyName(), overrides)
}

// loadResolver builds the domain resolver from the configured registry file,
// falling back to the built-in registry.
func loadResolver() (*registry.Resolver, error) {
	entries := registry.Default()
	if path := RegistryPath(); path != "" {
		loaded, err := registry.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading registry: %w", err)
		}
		entries = loaded
	}
	return registry.NewResolver(entries)
}

// aggregateDataset is the shared load-then-aggregate step behind the report
// and browse commands.
func aggregateDataset(path string, opts dataset.Options) ([]aggregate.Node, hierarchy.Spec, error) {
	spec, err := resolveHierarchy()
	if err != nil {
		return nil, hierarchy.Spec{}, err
	}
	obs, err := loadObservations(path, opts)
	if err != nil {
		return nil, hierarchy.Spec{}, err
	}
	nodes, err := aggregate.Aggregate(obs, spec)
	if err != nil {
		return nil, hierarchy.Spec{}, err
	}
	return nodes, spec, nil
}

// scoreOptions builds dataset options from the score column flags.
func scoreOptions(scoreColumn, scoreType, zColumn, pctColumn string) (dataset.Options, error) {
	opts := dataset.Options{
		ZColumn:          zColumn,
		PercentileColumn: pctColumn,
		ScoreColumn:      scoreColumn,
	}
	if scoreColumn != "" {
		st, err := scoring.ParseScoreType(scoreType)
		if err != nil {
			return dataset.Options{}, err
		}
		opts.ScoreType = st
	}
	return opts, nil
}
