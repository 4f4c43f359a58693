// Package tui provides the interactive terminal UI for kcal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwrobel/kcal/internal/config"
	"github.com/mwrobel/kcal/internal/storage"
	"github.com/mwrobel/kcal/internal/tui/ui"
	"github.com/mwrobel/kcal/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabEntries Tab = iota
	TabChart
	TabStats
)

var tabNames = []string{"Entries", "Chart", "Stats"}

// Model is the root TUI model
type Model struct {
	store *storage.Store
	cfg   config.Config

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	entriesView views.EntriesModel
	chartView   views.ChartModel
	statsView   views.StatsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(store *storage.Store, cfg config.Config) Model {
	themeProvider := ui.NewThemeProvider(cfg.Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		store:         store,
		cfg:           cfg,
		activeTab:     TabEntries,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		entriesView:   views.NewEntriesModel(store, styles, keys),
		chartView:     views.NewChartModel(store, styles, keys),
		statsView:     views.NewStatsModel(store, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Text inputs swallow character keys; only esc and the input
		// itself are live while one is focused.
		capturing := m.activeTab == TabEntries && m.entriesView.InputActive()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabEntries
			return m, nil

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabChart
			return m, nil

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabStats
			return m, nil

		case key.Matches(msg, m.keys.NextTheme) && !capturing:
			return m.cycleTheme()
		}

		// Route key input to the active view only.
		return m.updateActiveView(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateAllViews(msg)

	case ui.StoreChangedMsg:
		// A mutation in one view invalidates every derived view.
		return m.updateAllViews(msg)
	}

	return m.updateActiveView(msg)
}

// updateActiveView forwards msg to the currently visible view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabChart:
		m.chartView, cmd = m.chartView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	}
	return m, cmd
}

// updateAllViews forwards msg to every view.
func (m Model) updateAllViews(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.entriesView, cmd = m.entriesView.Update(msg)
	cmds = append(cmds, cmd)
	m.chartView, cmd = m.chartView.Update(msg)
	cmds = append(cmds, cmd)
	m.statsView, cmd = m.statsView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// cycleTheme switches to the next theme, re-styles all views, and
// persists the choice.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	name := m.themeProvider.NextTheme()
	m.styles = m.themeProvider.Styles()

	themeMsg := ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles}
	m.entriesView, _ = m.entriesView.Update(themeMsg)
	m.chartView, _ = m.chartView.Update(themeMsg)
	m.statsView, _ = m.statsView.Update(themeMsg)

	m.cfg.Theme = name
	return m, saveThemeConfig(m.cfg)
}

// saveThemeConfig writes the config file with the new theme
func saveThemeConfig(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		path, err := config.GetConfigPath()
		if err != nil {
			return nil
		}
		_ = config.Save(path, cfg)
		return nil
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabChart:
		b.WriteString(m.chartView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the key hints at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.activeTab == TabEntries && m.entriesView.InputActive() {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabEntries:
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("f", "range"))
			parts = append(parts, m.renderKeyHelp("j/k", "move"))
		case TabChart, TabStats:
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		}
		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("t", "theme"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	return strings.Join(parts, "  ")
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.HelpKey.Render(key),
		m.styles.HelpDesc.Render(desc))
}

// renderHelpOverlay renders the keyboard shortcut reference
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  t          Cycle theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatLabel.Render("Entries:"))
	help.WriteString("\n")
	help.WriteString("  j/k        Navigate up/down\n")
	help.WriteString("  f          Cycle range filter\n")
	help.WriteString("  n          New entry\n")
	help.WriteString("  d          Delete entry\n")
	help.WriteString("  r          Refresh\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(store *storage.Store, cfg config.Config) error {
	model := New(store, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
