package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwrobel/kcal/internal/chart"
	"github.com/mwrobel/kcal/internal/storage"
	"github.com/mwrobel/kcal/internal/tui/ui"
)

const (
	chartRows    = 10
	chartColMinW = 6
)

// ChartModel renders the trailing seven days as a bar chart.
type ChartModel struct {
	store  *storage.Store
	styles ui.Styles
	keys   ui.KeyMap

	width  int
	height int
	series chart.Series
}

// NewChartModel creates a new chart view model.
func NewChartModel(store *storage.Store, styles ui.Styles, keys ui.KeyMap) ChartModel {
	m := ChartModel{store: store, styles: styles, keys: keys}
	m.rebuild()
	return m
}

// rebuild recomputes the series for the current terminal width.
func (m *ChartModel) rebuild() {
	// scale terminal columns to the logical pixel space
	w := m.width * 8
	if w <= 0 {
		w = 560 // default logical width before the first resize
	}
	m.series = chart.Build(m.store.Entries(), timeNow(), w)
}

// Update implements the view update loop.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuild()
	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	case ui.StoreChangedMsg:
		m.rebuild()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			m.rebuild()
		}
	}
	return m, nil
}

// View renders the bar chart.
func (m ChartModel) View() string {
	s := m.series
	plotH := chart.Height - chart.PadBottom - 20

	colW := chartColMinW
	if m.width > 0 {
		if w := (m.width - 4) / len(s.Bars); w > colW {
			colW = w
		}
		if colW > 10 {
			colW = 10
		}
	}
	barW := colW - 2

	rows := make([]int, len(s.Bars))
	for i, b := range s.Bars {
		rows[i] = (b.Height*chartRows + plotH/2) / plotH
		if b.Sum > 0 && rows[i] == 0 {
			rows[i] = 1
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Last 7 days"))
	b.WriteString("\n")
	b.WriteString(m.styles.BarLabel.Render(fmt.Sprintf("scale max %d kcal", s.ScaleMax)))
	b.WriteString("\n\n")

	barCell := m.styles.Bar.Render(strings.Repeat("█", barW))
	padCell := strings.Repeat(" ", barW)
	for row := chartRows; row >= 1; row-- {
		for i := range s.Bars {
			if rows[i] >= row {
				b.WriteString(" " + barCell + " ")
			} else {
				b.WriteString(" " + padCell + " ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.BarAxis.Render(strings.Repeat("─", colW*len(s.Bars))))
	b.WriteString("\n")

	for _, bar := range s.Bars {
		b.WriteString(m.styles.BarLabel.Render(fmt.Sprintf(" %-*s ", barW, bar.Label)))
	}
	b.WriteString("\n")
	for _, bar := range s.Bars {
		b.WriteString(m.styles.BarLabel.Render(fmt.Sprintf(" %-*d ", barW, bar.Sum)))
	}
	b.WriteString("\n")

	return b.String()
}
