// internal/aggregate/aggregate.go
// Package aggregate computes per-level mean z-scores and percentiles over an
// observation table, producing the node tree consumed by drilldown charts.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mwiater/neuroscore/internal/hierarchy"
	"github.com/mwiater/neuroscore/internal/logging"
	"github.com/mwiater/neuroscore/internal/scoring"
)

// Node is one grouping value at one hierarchy level: the summary row for
// every observation that shares this value under the same parent. Nodes are
// immutable once Aggregate returns.
type Node struct {
	Level          int
	Value          string
	ID             string
	ParentID       string
	MeanZ          *float64
	MeanPercentile *float64
	Band           *scoring.Band
	Terminal       bool
	Children       []Node
}

// ConfigurationError reports a dataset/hierarchy mismatch detected before
// any aggregation work begins, or a slug collision discovered during a run.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return "configuration: " + e.Msg }

// Aggregate groups the observations by each hierarchy level in turn and
// returns the top-level sibling nodes, each carrying its subtree. Branches
// with no data at a level are pruned; groups are ordered by mean percentile
// descending, ties keeping encounter order. Validation failures surface as
// ConfigurationError before any grouping happens.
func Aggregate(obs []Observation, spec hierarchy.Spec) ([]Node, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := validateColumns(obs, spec.Columns()); err != nil {
		return nil, err
	}
	rows := deriveScores(obs)
	visited := make(map[string]string)
	return aggregateLevel(rows, spec.Columns(), 0, "", visited)
}

// validateColumns fails fast when a hierarchy column never appears in the
// table, or when no row carries a usable score.
func validateColumns(obs []Observation, columns []string) error {
	if len(obs) == 0 {
		return &ConfigurationError{Msg: "observation table is empty"}
	}
	var missing []string
	for _, col := range columns {
		found := false
		for _, o := range obs {
			if o.HasColumn(col) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &ConfigurationError{Msg: fmt.Sprintf("hierarchy columns absent from data: %s", strings.Join(missing, ", "))}
	}
	for _, o := range obs {
		if isNumber(o.Z) || isNumber(o.Percentile) {
			return nil
		}
	}
	return &ConfigurationError{Msg: "no observation carries a z or percentile score"}
}

// group carries the running sums for one distinct category value, in
// encounter order.
type group struct {
	value  string
	rows   []Observation
	zSum   float64
	zN     int
	pctSum float64
	pctN   int
}

func aggregateLevel(rows []Observation, columns []string, level int, parentID string, visited map[string]string) ([]Node, error) {
	if level >= len(columns) {
		return nil, nil
	}
	col := columns[level]

	order := make([]string, 0)
	groups := make(map[string]*group)
	for _, row := range rows {
		value := strings.TrimSpace(row.Label(col))
		if value == "" {
			continue
		}
		g, ok := groups[value]
		if !ok {
			g = &group{value: value}
			groups[value] = g
			order = append(order, value)
		}
		g.rows = append(g.rows, row)
		if isNumber(row.Z) {
			g.zSum += *row.Z
			g.zN++
		}
		if isNumber(row.Percentile) {
			g.pctSum += *row.Percentile
			g.pctN++
		}
	}
	if len(order) == 0 {
		// Nothing at this level: prune the branch entirely.
		logging.LogEvent("[AGGREGATE] No values for column %q under %q; pruning", col, parentID)
		return nil, nil
	}

	nodes := make([]Node, 0, len(order))
	for _, value := range order {
		g := groups[value]
		node := Node{
			Level:    level,
			Value:    value,
			ParentID: parentID,
		}
		if g.zN > 0 {
			mean := roundTo(g.zSum/float64(g.zN), 2)
			node.MeanZ = &mean
		}
		if g.pctN > 0 {
			mean := math.RoundToEven(g.pctSum / float64(g.pctN))
			node.MeanPercentile = &mean
		}
		node.Band = scoring.Classify(node.MeanPercentile)

		id := joinID(parentID, slug(value))
		if prior, clash := visited[id]; clash && prior != value {
			return nil, &ConfigurationError{Msg: fmt.Sprintf("category labels %q and %q both normalize to id %q", prior, value, id)}
		}
		visited[id] = value
		node.ID = id

		if level == len(columns)-1 {
			node.Terminal = true
		} else {
			children, err := aggregateLevel(g.rows, columns, level+1, id, visited)
			if err != nil {
				return nil, err
			}
			node.Children = children
			// A value with no deeper data behaves like a leaf so the
			// drilldown never dangles.
			node.Terminal = len(children) == 0
		}
		nodes = append(nodes, node)
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return sortKey(nodes[i]) > sortKey(nodes[j])
	})
	return nodes, nil
}

// sortKey orders nodes by mean percentile descending; nodes without one sink
// to the bottom.
func sortKey(n Node) float64 {
	if n.MeanPercentile == nil {
		return math.Inf(-1)
	}
	return *n.MeanPercentile
}

// slug lowercases a category value and joins its whitespace-separated parts
// with underscores: "Verbal Memory" -> "verbal_memory".
func slug(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), "_")
}

func joinID(parentID, child string) string {
	if parentID == "" {
		return child
	}
	return parentID + "_" + child
}

// roundTo rounds half-to-even at the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*scale) / scale
}

func isNumber(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}
