// internal/cli/helpers_test.go
package neuroscore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/neuroscore/internal/dataset"
	"github.com/mwiater/neuroscore/internal/drilldown"
	"github.com/mwiater/neuroscore/internal/hierarchy"
	"github.com/mwiater/neuroscore/internal/registry"
	"github.com/mwiater/neuroscore/internal/scoring"
)

func TestLoadObservationsByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "scores.csv")
	content := "domain,scale,percentile\nMemory,List Recall,70\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	obs, err := loadObservations(csvPath, dataset.Options{})
	if err != nil {
		t.Fatalf("loadObservations failed: %v", err)
	}
	if len(obs) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(obs))
	}

	if _, err := loadObservations(filepath.Join(dir, "scores.json"), dataset.Options{}); err == nil {
		t.Fatal("unsupported extension should fail")
	}
}

func TestScoreOptions(t *testing.T) {
	opts, err := scoreOptions("score", "t_score", "", "")
	if err != nil {
		t.Fatalf("scoreOptions failed: %v", err)
	}
	if opts.ScoreType != scoring.ScoreT {
		t.Errorf("score type = %q, want %q", opts.ScoreType, scoring.ScoreT)
	}

	if _, err := scoreOptions("score", "bogus", "", ""); err == nil {
		t.Fatal("bad score type should fail")
	}

	opts, err = scoreOptions("", "", "zed", "pct")
	if err != nil {
		t.Fatalf("scoreOptions failed: %v", err)
	}
	if opts.ZColumn != "zed" || opts.PercentileColumn != "pct" {
		t.Errorf("columns = %q/%q", opts.ZColumn, opts.PercentileColumn)
	}
}

func TestLevelLabels(t *testing.T) {
	spec := hierarchy.Spec{
		Name: "clinical",
		Levels: []hierarchy.Level{
			{Column: "domain", Label: "Domain"},
			{Column: "scale", Label: "Scale"},
		},
	}
	labels := levelLabels(spec)
	if len(labels) != 2 || labels[0] != "Domain" || labels[1] != "Scale" {
		t.Fatalf("labels = %v", labels)
	}
}

func TestCheckDomainScoreType(t *testing.T) {
	res := registry.Resolved{Entry: registry.Entry{
		Domains:    []string{"Memory"},
		ScoreTypes: []scoring.ScoreType{scoring.ScoreScaled, scoring.ScoreT},
	}}
	if err := checkDomainScoreType(res, scoring.ScoreScaled); err != nil {
		t.Errorf("declared score type rejected: %v", err)
	}
	if err := checkDomainScoreType(res, ""); err != nil {
		t.Errorf("no score type should pass: %v", err)
	}
	if err := checkDomainScoreType(res, scoring.ScoreStandard); err == nil {
		t.Error("undeclared score type should be rejected")
	}
}

func TestDomainTitle(t *testing.T) {
	res := registry.Resolved{Entry: registry.Entry{
		Domains:    []string{"Memory"},
		DataSource: "neurocog",
		Section:    6,
	}}
	if got, want := domainTitle(res), "Memory (neurocog, section 6)"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
}

func TestWriteSeriesJSON(t *testing.T) {
	pct := 70.0
	z := 0.52
	chart := drilldown.Chart{
		Root: []drilldown.Row{
			{Name: "Memory", MeanZ: &z, MeanPercentile: &pct, DrilldownID: "memory"},
		},
		Series: []drilldown.SeriesRecord{
			{ID: "memory", Items: []drilldown.Row{{Name: "List Recall", MeanZ: &z, MeanPercentile: &pct}}},
		},
	}

	path := filepath.Join(t.TempDir(), "series", "out.json")
	if err := writeSeriesJSON(path, chart, "column"); err != nil {
		t.Fatalf("writeSeriesJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{`"root"`, `"drilldown"`, `"Memory"`, `"List Recall"`, `"type": "column"`} {
		if !strings.Contains(out, want) {
			t.Errorf("series JSON missing %q", want)
		}
	}
}

func TestPrintBands(t *testing.T) {
	var buf bytes.Buffer
	printBands(&buf)
	out := buf.String()
	for _, want := range []string{"Exceptionally High", "98 - 100", "Average", "0 - 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("band table missing %q", want)
		}
	}
}
