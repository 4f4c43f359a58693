package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwrobel/kcal/internal/aggregate"
	"github.com/mwrobel/kcal/internal/entry"
	"github.com/mwrobel/kcal/internal/render"
	"github.com/mwrobel/kcal/internal/storage"
	"github.com/mwrobel/kcal/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeDelete
)

// inputFieldCount is the number of text inputs in add mode
const inputFieldCount = 4

// EntriesModel is the model for the entries view
type EntriesModel struct {
	store  *storage.Store
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	rng     aggregate.Range
	entries []entry.Entry
	err     error
	status  string

	// Add mode state
	mode         entryMode
	amountInput  textinput.Model
	nameInput    textinput.Model
	dateInput    textinput.Model
	noteInput    textinput.Model
	focusedInput int
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(store *storage.Store, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	amountInput := textinput.New()
	amountInput.Placeholder = "Amount (kcal)..."
	amountInput.CharLimit = 10
	amountInput.Width = 16

	nameInput := textinput.New()
	nameInput.Placeholder = "Name (optional)..."
	nameInput.CharLimit = 120
	nameInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Date YYYY-MM-DD (today)..."
	dateInput.CharLimit = 10
	dateInput.Width = 24

	noteInput := textinput.New()
	noteInput.Placeholder = "Note (optional)..."
	noteInput.CharLimit = 200
	noteInput.Width = 40

	m := EntriesModel{
		store:       store,
		styles:      styles,
		keys:        keys,
		rng:         aggregate.RangeAll,
		amountInput: amountInput,
		nameInput:   nameInput,
		dateInput:   dateInput,
		noteInput:   noteInput,
	}
	m.reload()
	return m
}

// reload recomputes the filtered view from the store
func (m *EntriesModel) reload() {
	m.entries = aggregate.FilteredSorted(m.store.Entries(), m.rng, timeNow())
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update implements the view update loop
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil

	case ui.StoreChangedMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case entryModeAdd:
			return m.updateAddMode(msg)
		case entryModeDelete:
			return m.updateDeleteMode(msg)
		}
		return m.updateNormalMode(msg)
	}

	return m, nil
}

func (m EntriesModel) updateNormalMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.rng = nextRange(m.rng)
		m.cursor = 0
		m.reload()
	case key.Matches(msg, m.keys.Refresh):
		m.reload()
	case key.Matches(msg, m.keys.New):
		m.mode = entryModeAdd
		m.focusedInput = 0
		m.err = nil
		m.status = ""
		m.amountInput.SetValue("")
		m.nameInput.SetValue("")
		m.dateInput.SetValue("")
		m.noteInput.SetValue("")
		m.amountInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Delete):
		if len(m.entries) > 0 {
			m.mode = entryModeDelete
		}
	}
	return m, nil
}

func (m EntriesModel) updateAddMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.blurInputs()
		return m, nil

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.focusedInput = (m.focusedInput + 1) % inputFieldCount
		return m.focusInput()

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.focusedInput = (m.focusedInput + inputFieldCount - 1) % inputFieldCount
		return m.focusInput()

	case key.Matches(msg, m.keys.Select):
		e, err := m.store.Add(
			m.nameInput.Value(),
			m.amountInput.Value(),
			m.dateInput.Value(),
			m.noteInput.Value(),
		)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.mode = entryModeNormal
		m.err = nil
		m.status = fmt.Sprintf("Logged %s – %d kcal", render.Sanitize(e.DisplayName()), e.Kcal)
		m.blurInputs()
		m.reload()
		return m, broadcastStoreChanged()
	}

	var cmd tea.Cmd
	switch m.focusedInput {
	case 0:
		m.amountInput, cmd = m.amountInput.Update(msg)
	case 1:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case 2:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case 3:
		m.noteInput, cmd = m.noteInput.Update(msg)
	}
	return m, cmd
}

func (m EntriesModel) updateDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.entries) {
			target := m.entries[m.cursor]
			if _, err := m.store.Delete(entry.FormatID(target.ID)); err != nil {
				m.err = err
			} else {
				m.status = fmt.Sprintf("Deleted entry %s", entry.FormatID(target.ID))
			}
		}
		m.mode = entryModeNormal
		m.reload()
		return m, broadcastStoreChanged()
	default:
		m.mode = entryModeNormal
	}
	return m, nil
}

func (m *EntriesModel) blurInputs() {
	m.amountInput.Blur()
	m.nameInput.Blur()
	m.dateInput.Blur()
	m.noteInput.Blur()
}

func (m EntriesModel) focusInput() (EntriesModel, tea.Cmd) {
	m.blurInputs()
	switch m.focusedInput {
	case 0:
		m.amountInput.Focus()
	case 1:
		m.nameInput.Focus()
	case 2:
		m.dateInput.Focus()
	case 3:
		m.noteInput.Focus()
	}
	return m, textinput.Blink
}

// InputActive reports whether the view is capturing keystrokes in a
// modal (add form or delete confirmation).
func (m EntriesModel) InputActive() bool {
	return m.mode != entryModeNormal
}

// View renders the entries view
func (m EntriesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Entries (%s)", m.rng)))
	b.WriteString("\n")

	switch m.mode {
	case entryModeAdd:
		b.WriteString(m.styles.DialogTitle.Render("New entry"))
		b.WriteString("\n")
		for i, in := range []textinput.Model{m.amountInput, m.nameInput, m.dateInput, m.noteInput} {
			style := m.styles.Input
			if i == m.focusedInput {
				style = m.styles.InputFocused
			}
			b.WriteString(style.Render(in.View()))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.HelpDesc.Render("enter save • tab next field • esc cancel"))
		b.WriteString("\n")

	case entryModeDelete:
		if m.cursor < len(m.entries) {
			e := m.entries[m.cursor]
			dialog := m.styles.DialogTitle.Render("Delete entry?") + "\n" +
				render.FormatEntry(e) + "\n\n" +
				m.styles.HelpDesc.Render("y confirm • any other key cancel")
			b.WriteString(m.styles.Dialog.Render(dialog))
			b.WriteString("\n")
		}

	default:
		if len(m.entries) == 0 {
			b.WriteString(fmt.Sprintf("No entries found for range %q\n", m.rng))
		} else {
			b.WriteString(RenderEntryList(m.entries, m.styles, m.cursor, m.width))
		}
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}

// nextRange cycles through the four range filters
func nextRange(r aggregate.Range) aggregate.Range {
	switch r {
	case aggregate.RangeAll:
		return aggregate.RangeToday
	case aggregate.RangeToday:
		return aggregate.RangeWeek
	case aggregate.RangeWeek:
		return aggregate.RangeMonth
	default:
		return aggregate.RangeAll
	}
}
