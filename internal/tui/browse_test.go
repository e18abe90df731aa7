// internal/tui/browse_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/neuroscore/internal/aggregate"
	"github.com/mwiater/neuroscore/internal/hierarchy"
)

func browseNodes(t *testing.T) []aggregate.Node {
	t.Helper()
	f := func(v float64) *float64 { return &v }
	obs := []aggregate.Observation{
		{Labels: map[string]string{"domain": "Memory", "scale": "List Recall"}, Percentile: f(70)},
		{Labels: map[string]string{"domain": "Memory", "scale": "Story Recall"}, Percentile: f(40)},
		{Labels: map[string]string{"domain": "Attention", "scale": "Digit Span"}, Percentile: f(5)},
	}
	spec := hierarchy.Spec{
		Name: "flat",
		Levels: []hierarchy.Level{
			{Column: "domain", Label: "Domain"},
			{Column: "scale", Label: "Scale"},
		},
	}
	nodes, err := aggregate.Aggregate(obs, spec)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	return nodes
}

// TestBrowse_DrillAndBack covers the drilldown state machine: enter pushes a
// nested level, esc pops back, and quitting works from any depth.
func TestBrowse_DrillAndBack(t *testing.T) {
	m := newBrowseModel("Score Browser", browseNodes(t))
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(m.stack) != 1 {
		t.Fatalf("expected 1 level, got %d", len(m.stack))
	}
	if got := len(m.current().list.Items()); got != 2 {
		t.Fatalf("expected 2 root items, got %d", got)
	}

	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = m2.(*browseModel)
	if len(m.stack) != 2 {
		t.Fatalf("enter on a parent should drill in; stack depth %d", len(m.stack))
	}
	if got := len(m.current().list.Items()); got != 2 {
		t.Fatalf("expected 2 scale items under Memory, got %d", got)
	}

	// Scales have no children; enter stays put.
	m2, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = m2.(*browseModel)
	if len(m.stack) != 2 {
		t.Fatalf("enter on a leaf should not drill; stack depth %d", len(m.stack))
	}

	m2, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = m2.(*browseModel)
	if len(m.stack) != 1 {
		t.Fatalf("esc should pop back to the root; stack depth %d", len(m.stack))
	}

	m2, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = m2.(*browseModel)
	if len(m.stack) != 1 {
		t.Fatalf("esc at the root should be a no-op; stack depth %d", len(m.stack))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestBrowse_View(t *testing.T) {
	m := newBrowseModel("Score Browser", browseNodes(t))

	if got := m.View(); got != "Initializing..." {
		t.Fatalf("view before sizing = %q", got)
	}

	m2, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = m2.(*browseModel)
	out := m.View()
	if !strings.Contains(out, "Memory") {
		t.Fatalf("expected Memory in view output; got: %s", out)
	}
	if !strings.Contains(out, "enter: drill in") {
		t.Fatal("expected navigation hints in view output")
	}
}

func TestItemRendering(t *testing.T) {
	nodes := browseNodes(t)
	// Attention (percentile 5) sorts last and carries the Below Average band.
	leaf := item{node: nodes[len(nodes)-1]}
	if !strings.Contains(leaf.Title(), "Attention") {
		t.Fatalf("title = %q", leaf.Title())
	}
	if !strings.Contains(leaf.Title(), "Below Average") {
		t.Fatalf("title should carry the band; got %q", leaf.Title())
	}
	if !strings.Contains(leaf.Description(), "percentile 5") {
		t.Fatalf("description = %q", leaf.Description())
	}
	if leaf.FilterValue() != "Attention" {
		t.Fatalf("filter value = %q", leaf.FilterValue())
	}
}
