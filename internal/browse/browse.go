// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package browse is a terminal user interface for exploring incident
// counts. A list of countries selects the filter and the arrow keys
// walk a pointer across the chart's data points.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aclements/go-incidents/chart"
	"github.com/aclements/go-incidents/dataset"
	"github.com/aclements/go-incidents/internal/svgscene"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4682B4")).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4682B4")).
			Padding(0, 1)

	tooltipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

const (
	listWidth = 30

	defaultCols = 60
	defaultRows = 15
)

// item is one entry in the country list.
type item struct {
	title  string
	desc   string
	filter dataset.Filter
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// Model is the Bubble Tea model for the browser.
type Model struct {
	sess  *chart.Session
	scene *svgscene.Scene
	list  list.Model

	// cursor is the index of the marker the pointer is on, or
	// -1.
	cursor int

	cols, rows int
}

// New returns a browser over records, showing all countries.
func New(records []*dataset.Record, layout chart.Layout) Model {
	items := []list.Item{item{
		title:  "All countries",
		desc:   incidents(records, dataset.All),
		filter: dataset.All,
	}}
	for _, c := range dataset.Countries(records) {
		f := dataset.ByCountry(c)
		items = append(items, item{
			title:  dataset.CountryLabel(c),
			desc:   incidents(records, f),
			filter: f,
		})
	}
	l := list.New(items, list.NewDefaultDelegate(), listWidth, defaultRows+4)
	l.Title = "Countries"
	l.DisableQuitKeybindings()

	sess := chart.NewSession(records, layout)
	scene := svgscene.New(layout)
	sess.Render(scene)

	return Model{
		sess:   sess,
		scene:  scene,
		list:   l,
		cursor: -1,
		cols:   defaultCols,
		rows:   defaultRows,
	}
}

func incidents(records []*dataset.Record, f dataset.Filter) string {
	n := dataset.Summarize(dataset.Aggregate(records, f)).Total
	if n == 1 {
		return "1 incident"
	}
	return fmt.Sprintf("%d incidents", n)
}

// Session returns the chart session shown by m.
func (m Model) Session() *chart.Session {
	return m.sess
}

// Scene returns the scene m draws the chart on.
func (m Model) Scene() *svgscene.Scene {
	return m.scene
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(listWidth, msg.Height-2)
		m.cols = max(msg.Width-listWidth-12, 20)
		m.rows = max(msg.Height-10, 5)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.sess.Select(m.scene, it.filter)
				m.cursor = -1
			}
			return m, nil

		case "left":
			m.step(-1)
			return m, nil

		case "right":
			m.step(1)
			return m, nil

		case "esc":
			if m.cursor >= 0 {
				m.sess.PointerLeave()
				m.cursor = -1
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// step moves the pointer by delta markers, stopping at either end.
func (m *Model) step(delta int) {
	markers := m.sess.Markers()
	if len(markers) == 0 {
		return
	}
	i := m.cursor + delta
	if m.cursor < 0 {
		if delta < 0 {
			i = len(markers) - 1
		} else {
			i = 0
		}
	}
	i = min(max(i, 0), len(markers)-1)
	m.cursor = i
	m.sess.PointerMove(markers[i].At)
}

// View implements tea.Model.
func (m Model) View() string {
	filter := m.sess.Filter().String()
	var body string
	if len(m.sess.Series()) == 0 {
		body = dimStyle.Render("No incidents for " + filter)
	} else {
		body = strings.Join(Raster(m.scene, m.cols, m.rows), "\n")
	}

	tip := " "
	if t := m.scene.TooltipState(); t.Visible {
		tip = strings.Join(t.Lines, "  ")
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Aircraft incidents: "+filter),
		boxStyle.Render(body),
		tooltipStyle.Render(tip),
		dimStyle.Render("enter: select  ←/→: points  esc: clear  q: quit"),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), "  ", right)
}

// Run runs the browser on the terminal until the user quits.
func Run(records []*dataset.Record, layout chart.Layout) error {
	p := tea.NewProgram(New(records, layout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
