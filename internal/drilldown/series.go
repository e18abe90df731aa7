// internal/drilldown/series.go
// Package drilldown flattens an aggregation tree into the root and child
// series consumed by interactive drilldown charts.
package drilldown

import (
	"github.com/mwiater/neuroscore/internal/aggregate"
	"github.com/mwiater/neuroscore/internal/scoring"
)

// Row is one display row of a series: a category name with its summary
// statistics. DrilldownID is set only when the row's node has children of
// its own, so terminal leaves never acquire drill targets.
type Row struct {
	Name           string
	MeanZ          *float64
	MeanPercentile *float64
	Band           *scoring.Band
	DrilldownID    string
}

// SeriesRecord is the child series revealed when a chart bar is clicked:
// one record per node with children, items being the children's display
// rows in their sorted order.
type SeriesRecord struct {
	ID       string
	ParentID string
	Items    []Row
}

// Chart is the flattened output of Build: the top-level rows plus every
// drillable series in pre-order.
type Chart struct {
	Root   []Row
	Series []SeriesRecord
}

// Build walks the sibling trees returned by the aggregator and produces the
// root rows and a pre-order list of series records. Each node appears at most
// once, and every DrilldownID emitted anywhere resolves to a SeriesRecord.
func Build(roots []aggregate.Node) Chart {
	chart := Chart{Root: make([]Row, 0, len(roots))}
	for _, node := range roots {
		chart.Root = append(chart.Root, displayRow(node))
	}
	for _, node := range roots {
		chart.Series = appendSeries(chart.Series, node)
	}
	return chart
}

// displayRow converts a node into its display row, linking a drill target
// only when the node has children to reveal.
func displayRow(node aggregate.Node) Row {
	row := Row{
		Name:           node.Value,
		MeanZ:          node.MeanZ,
		MeanPercentile: node.MeanPercentile,
		Band:           node.Band,
	}
	if len(node.Children) > 0 {
		row.DrilldownID = node.ID
	}
	return row
}

// appendSeries emits the node's own child series (if any) followed by each
// child's, giving the pre-order contract tests rely on.
func appendSeries(series []SeriesRecord, node aggregate.Node) []SeriesRecord {
	if len(node.Children) == 0 {
		return series
	}
	record := SeriesRecord{
		ID:       node.ID,
		ParentID: node.ParentID,
		Items:    make([]Row, 0, len(node.Children)),
	}
	for _, child := range node.Children {
		record.Items = append(record.Items, displayRow(child))
	}
	series = append(series, record)
	for _, child := range node.Children {
		series = appendSeries(series, child)
	}
	return series
}
