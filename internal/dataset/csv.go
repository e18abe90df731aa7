// internal/dataset/csv.go

// Package dataset loads scored observations from CSV and Parquet files and
// normalizes the score columns they carry into z-scores and percentiles.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mwiater/neuroscore/internal/aggregate"
	"github.com/mwiater/neuroscore/internal/logging"
	"github.com/mwiater/neuroscore/internal/scoring"
)

// Options controls how score columns are interpreted while loading. Zero
// value means: read "z_score" and "percentile" columns when present.
type Options struct {
	// ZColumn and PercentileColumn override the default score column names.
	ZColumn          string
	PercentileColumn string
	// ScoreColumn names a raw score column converted via ScoreType. When
	// set, ScoreType must be set too.
	ScoreColumn string
	ScoreType   scoring.ScoreType
}

func (o Options) zColumn() string {
	if o.ZColumn != "" {
		return o.ZColumn
	}
	return "z_score"
}

func (o Options) percentileColumn() string {
	if o.PercentileColumn != "" {
		return o.PercentileColumn
	}
	return "percentile"
}

// missingTokens are cell values treated as absent scores.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"-":    true,
}

// LoadCSV reads observations from a headered CSV file. Every column that is
// not a score column becomes a label. Rows with no parseable score still
// load; aggregation decides what to do with them.
func LoadCSV(path string, opts Options) ([]aggregate.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	obs, err := readCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logging.LogDataset(path, len(obs))
	return obs, nil
}

func readCSV(r io.Reader, opts Options) ([]aggregate.Observation, error) {
	if opts.ScoreColumn != "" && opts.ScoreType == "" {
		return nil, fmt.Errorf("score column %q set without a score type", opts.ScoreColumn)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset")
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	zCol, pctCol := opts.zColumn(), opts.percentileColumn()
	var obs []aggregate.Observation
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		o := aggregate.Observation{Labels: make(map[string]string)}
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			switch {
			case header[i] == zCol:
				v, err := parseScore(cell)
				if err != nil {
					return nil, fmt.Errorf("line %d: column %q: %w", line, zCol, err)
				}
				o.Z = v
			case header[i] == pctCol:
				v, err := parseScore(cell)
				if err != nil {
					return nil, fmt.Errorf("line %d: column %q: %w", line, pctCol, err)
				}
				o.Percentile = v
			case opts.ScoreColumn != "" && header[i] == opts.ScoreColumn:
				v, err := parseScore(cell)
				if err != nil {
					return nil, fmt.Errorf("line %d: column %q: %w", line, opts.ScoreColumn, err)
				}
				if v != nil {
					z, err := scoring.ToZ(*v, opts.ScoreType)
					if err != nil {
						return nil, fmt.Errorf("line %d: %w", line, err)
					}
					o.Z = &z
					pct := scoring.ZToPercentile(z)
					o.Percentile = &pct
				}
			default:
				o.Labels[header[i]] = strings.TrimSpace(cell)
			}
		}
		obs = append(obs, o)
	}
	return obs, nil
}

func parseScore(cell string) (*float64, error) {
	cell = strings.TrimSpace(cell)
	if missingTokens[strings.ToLower(cell)] {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, fmt.Errorf("bad score value %q", cell)
	}
	return &v, nil
}
