// internal/tui/browse.go
// Package tui provides the interactive terminal browser for aggregated
// score hierarchies.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/neuroscore/internal/aggregate"
	"github.com/mwiater/neuroscore/internal/scoring"
	"github.com/mwiater/neuroscore/internal/util"
)

var bandColors = map[scoring.Band]lipgloss.Color{
	scoring.BandExceptionallyHigh: lipgloss.Color("27"),
	scoring.BandAboveAverage:      lipgloss.Color("33"),
	scoring.BandHighAverage:       lipgloss.Color("75"),
	scoring.BandAverage:           lipgloss.Color("245"),
	scoring.BandLowAverage:        lipgloss.Color("214"),
	scoring.BandBelowAverage:      lipgloss.Color("208"),
	scoring.BandExceptionallyLow:  lipgloss.Color("196"),
}

// item represents a selectable node in the browser list.
type item struct {
	node aggregate.Node
}

// Title returns the node name with its band, colored by severity.
func (i item) Title() string {
	name := i.node.Value
	if i.node.Band == nil {
		return name
	}
	band := *i.node.Band
	style := lipgloss.NewStyle().Foreground(bandColors[band])
	return fmt.Sprintf("%s  %s", name, style.Render(string(band)))
}

// Description summarizes the node's mean scores and child count.
func (i item) Description() string {
	parts := []string{
		fmt.Sprintf("z %s", util.FormatSigned(i.node.MeanZ, 2)),
		fmt.Sprintf("percentile %s", util.FormatScore(i.node.MeanPercentile, 0)),
	}
	if n := len(i.node.Children); n > 0 {
		parts = append(parts, fmt.Sprintf("%d nested", n))
	}
	return strings.Join(parts, "  ·  ")
}

// FilterValue returns the node name, used for filtering.
func (i item) FilterValue() string { return i.node.Value }

// level is one list in the drilldown stack.
type level struct {
	title string
	list  list.Model
}

// browseModel is the main application model for the Bubble Tea UI.
type browseModel struct {
	stack         []level
	width, height int
}

// newBrowseModel builds the root level from top-level nodes.
func newBrowseModel(title string, roots []aggregate.Node) *browseModel {
	return &browseModel{stack: []level{newLevel(title, roots)}}
}

func newLevel(title string, nodes []aggregate.Node) level {
	items := make([]list.Item, len(nodes))
	for i, n := range nodes {
		items[i] = item{node: n}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	return level{title: title, list: l}
}

func (m *browseModel) current() *level {
	return &m.stack[len(m.stack)-1]
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if selected, ok := m.current().list.SelectedItem().(item); ok && len(selected.node.Children) > 0 {
				next := newLevel(breadcrumb(m.stack)+" > "+selected.node.Value, selected.node.Children)
				next.list.SetSize(m.width-2, m.height-4)
				m.stack = append(m.stack, next)
				return m, nil
			}
		case "esc", "backspace":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for i := range m.stack {
			m.stack[i].list.SetSize(msg.Width-2, msg.Height-4)
		}
	}

	var cmd tea.Cmd
	m.current().list, cmd = m.current().list.Update(msg)
	return m, cmd
}

// View renders the current drilldown level with navigation hints.
func (m *browseModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	listView := m.current().list.View()
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hints := "enter: drill in"
	if len(m.stack) > 1 {
		hints += "  ·  esc: back"
	}
	hints += "  ·  q: quit"
	view := listView + "\n" + hintStyle.Render(hints)
	return lipgloss.NewStyle().Margin(1, 2).Render(util.TruncateToWidth(view, m.width))
}

// breadcrumb joins level titles for the nested list header.
func breadcrumb(stack []level) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].title
}

// StartBrowser runs the interactive drilldown browser over aggregated nodes.
func StartBrowser(title string, roots []aggregate.Node) error {
	m := newBrowseModel(title, roots)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
