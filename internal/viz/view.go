// Package viz is an interactive terminal browser for the series an
// analysis run produces: raw signal, normalized E(t) and any derived
// curve. Arrow keys switch series, q quits.
package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

// Series is one plottable curve.
type Series struct {
	Name   string
	Values []float64
}

type Model struct {
	title  string
	series []Series
	idx    int
	width  int
}

func NewModel(title string, series []Series) Model {
	return Model{title: title, series: series, width: 80}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "tab", "l":
			m.idx = (m.idx + 1) % len(m.series)
		case "left", "shift+tab", "h":
			m.idx = (m.idx - 1 + len(m.series)) % len(m.series)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.series) == 0 {
		return "no series to display\n"
	}

	var tabs []string
	for i, s := range m.series {
		if i == m.idx {
			tabs = append(tabs, activeTabStyle.Render(s.Name))
		} else {
			tabs = append(tabs, tabStyle.Render(s.Name))
		}
	}

	cur := m.series[m.idx]
	width := m.width - 12
	if width < 20 {
		width = 20
	}

	var body string
	if len(cur.Values) < 2 {
		body = "not enough points"
	} else {
		body = asciigraph.Plot(cur.Values,
			asciigraph.Height(14),
			asciigraph.Width(width),
		)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title) + "\n")
	sb.WriteString(strings.Join(tabs, " ") + "\n")
	sb.WriteString(panelStyle.Render(body) + "\n")
	sb.WriteString(hintStyle.Render(fmt.Sprintf("%d points | left/right: switch series | q: quit", len(cur.Values))) + "\n")
	return sb.String()
}

// Run opens the browser and blocks until the user quits.
func Run(title string, series []Series) error {
	p := tea.NewProgram(NewModel(title, series))
	_, err := p.Run()
	return err
}
