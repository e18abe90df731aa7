// internal/report/report.go

// Package report renders aggregated score hierarchies as a standalone HTML
// dashboard with a drilldown chart and a band summary table.
package report

import (
	"bytes"
	"encoding/json"
	"html/template"
	"strconv"

	"github.com/mwiater/neuroscore/internal/drilldown"
	"github.com/mwiater/neuroscore/internal/scoring"
)

type ReportData struct {
	Title      string
	ChartType  string
	RootJSON   template.JS
	SeriesJSON template.JS
	TableJSON  template.JS
	BandsJSON  template.JS
}

// tableRecord is the flattened node view the summary table renders.
type tableRecord struct {
	Level          string   `json:"level"`
	Name           string   `json:"name"`
	MeanZ          *float64 `json:"mean_z"`
	MeanPercentile *float64 `json:"mean_percentile"`
	Band           string   `json:"band,omitempty"`
	Depth          int      `json:"depth"`
}

// GenerateReport renders a standalone HTML dashboard for a built chart.
// chartType selects the drilldown series type, "column" or "bar".
// levelLabels names the hierarchy levels for the summary table, outermost
// first; depths past the slice fall back to a numbered label.
func GenerateReport(title string, chart drilldown.Chart, chartType string, levelLabels []string) (string, error) {
	if chartType == "" {
		chartType = "column"
	}

	rootPayload, err := json.Marshal(chart.RootPayload())
	if err != nil {
		return "", err
	}
	seriesPayload, err := json.Marshal(chart.DrilldownPayload(chartType))
	if err != nil {
		return "", err
	}
	tablePayload, err := json.Marshal(flattenForTable(chart, levelLabels))
	if err != nil {
		return "", err
	}
	bandsPayload, err := json.Marshal(scoring.Bands())
	if err != nil {
		return "", err
	}

	viewModel := ReportData{
		Title:      title,
		ChartType:  chartType,
		RootJSON:   template.JS(rootPayload),
		SeriesJSON: template.JS(seriesPayload),
		TableJSON:  template.JS(tablePayload),
		BandsJSON:  template.JS(bandsPayload),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, viewModel); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func flattenForTable(chart drilldown.Chart, levelLabels []string) []tableRecord {
	records := make([]tableRecord, 0, len(chart.Root))
	byID := make(map[string]drilldown.SeriesRecord, len(chart.Series))
	for _, record := range chart.Series {
		byID[record.ID] = record
	}

	levelLabel := func(depth int) string {
		if depth < len(levelLabels) {
			return levelLabels[depth]
		}
		return "level " + strconv.Itoa(depth)
	}

	var walk func(row drilldown.Row, depth int)
	walk = func(row drilldown.Row, depth int) {
		record := tableRecord{
			Level:          levelLabel(depth),
			Name:           row.Name,
			MeanZ:          row.MeanZ,
			MeanPercentile: row.MeanPercentile,
			Depth:          depth,
		}
		if row.Band != nil {
			record.Band = string(*row.Band)
		}
		records = append(records, record)
		if row.DrilldownID == "" {
			return
		}
		if child, ok := byID[row.DrilldownID]; ok {
			for _, item := range child.Items {
				walk(item, depth+1)
			}
		}
	}
	for _, row := range chart.Root {
		walk(row, 0)
	}
	return records
}

var reportTemplate = template.Must(template.New("score-report").Parse(reportTemplateHTML))
