package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwrobel/kcal/internal/aggregate"
	"github.com/mwrobel/kcal/internal/dateutil"
	"github.com/mwrobel/kcal/internal/storage"
	"github.com/mwrobel/kcal/internal/tui/ui"
)

// StatsModel shows the intake totals for the trailing week.
type StatsModel struct {
	store  *storage.Store
	styles ui.Styles
	keys   ui.KeyMap

	totals      aggregate.Totals
	weekEntries int
	weekDays    int
}

// NewStatsModel creates a new stats view model.
func NewStatsModel(store *storage.Store, styles ui.Styles, keys ui.KeyMap) StatsModel {
	m := StatsModel{store: store, styles: styles, keys: keys}
	m.recalc()
	return m
}

func (m *StatsModel) recalc() {
	now := timeNow()
	entries := m.store.Entries()
	m.totals = aggregate.CalcTotals(entries, now)

	days := make(map[string]bool)
	m.weekEntries = 0
	for _, e := range entries {
		if dateutil.InLastNDays(e.Date, aggregate.WindowDays, now) {
			m.weekEntries++
			days[e.Date] = true
		}
	}
	m.weekDays = len(days)
}

// Update implements the view update loop.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	case ui.StoreChangedMsg:
		m.recalc()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			m.recalc()
		}
	}
	return m, nil
}

// View renders the stats view.
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%-18s", label)))
		b.WriteString(m.styles.StatValue.Render(value))
		b.WriteString("\n")
	}

	row("Today", fmt.Sprintf("%d kcal", m.totals.Today))
	row("Last 7 days", fmt.Sprintf("%d kcal", m.totals.Week))
	row("Week average", fmt.Sprintf("%.0f kcal", m.totals.WeekAverage))
	b.WriteString("\n")
	row("Entries this week", fmt.Sprintf("%d", m.weekEntries))
	row("Days with entries", fmt.Sprintf("%d of %d", m.weekDays, aggregate.WindowDays))

	return b.String()
}
