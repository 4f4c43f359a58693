package views

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwrobel/kcal/internal/storage"
	"github.com/mwrobel/kcal/internal/tui/ui"
)

var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), storage.StorageKey+".json")
	s, err := storage.Open(storage.NewFileBlob(path))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s.WithNow(func() time.Time { return fixedNow })
}

func withFixedClock(t *testing.T) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = orig })
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func testStyles() ui.Styles {
	return ui.NewThemeProvider("").Styles()
}

func TestEntriesModelEmpty(t *testing.T) {
	withFixedClock(t)
	m := NewEntriesModel(setupStore(t), testStyles(), ui.DefaultKeyMap())

	view := m.View()
	if !strings.Contains(view, "No entries found") {
		t.Errorf("expected empty message, got:\n%s", view)
	}
	if m.InputActive() {
		t.Error("fresh model should not be capturing input")
	}
}

func TestEntriesModelShowsEntries(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	if _, err := store.Add("chicken salad", "450", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())

	view := m.View()
	if !strings.Contains(view, "chicken salad") {
		t.Errorf("expected entry in view, got:\n%s", view)
	}
	if !strings.Contains(view, "450") {
		t.Errorf("expected kcal in view, got:\n%s", view)
	}
}

func TestEntriesModelCursorMovement(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	for _, row := range [][2]string{{"100", "a"}, {"200", "b"}, {"300", "c"}} {
		if _, err := store.Add(row[1], row[0], "", ""); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())
	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, expected 0", m.cursor)
	}

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d after two downs, expected 2", m.cursor)
	}

	// does not run off the end
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, expected clamp at last entry", m.cursor)
	}

	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d after up, expected 1", m.cursor)
	}
}

func TestEntriesModelRangeCycling(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	if _, err := store.Add("today", "100", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := store.Add("old", "200", "2024-01-01", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())
	if len(m.entries) != 2 {
		t.Fatalf("all range shows %d entries, expected 2", len(m.entries))
	}

	// all -> today
	m, _ = m.Update(keyMsg("f"))
	if len(m.entries) != 1 {
		t.Errorf("today range shows %d entries, expected 1", len(m.entries))
	}
	if !strings.Contains(m.View(), "today") {
		t.Errorf("expected today entry visible:\n%s", m.View())
	}
}

func TestEntriesModelAddFlow(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(keyMsg("n"))
	if !m.InputActive() {
		t.Fatal("expected add mode after 'n'")
	}

	m.amountInput.SetValue("450")
	m.nameInput.SetValue("lunch")

	m, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if m.InputActive() {
		t.Error("expected add mode to close after save")
	}
	if store.Len() != 1 {
		t.Errorf("store Len() = %d, expected 1", store.Len())
	}
	if !strings.Contains(m.View(), "Logged lunch – 450 kcal") {
		t.Errorf("expected status line, got:\n%s", m.View())
	}
}

func TestEntriesModelAddInvalidAmountStaysOpen(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(keyMsg("n"))
	m.amountInput.SetValue("not a number")

	m, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if !m.InputActive() {
		t.Error("expected add mode to stay open on invalid input")
	}
	if store.Len() != 0 {
		t.Errorf("store Len() = %d, expected invalid input to persist nothing", store.Len())
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Errorf("expected error in view:\n%s", m.View())
	}
}

func TestEntriesModelAddCancel(t *testing.T) {
	withFixedClock(t)
	m := NewEntriesModel(setupStore(t), testStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(keyMsg("n"))
	m, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEsc}))
	if m.InputActive() {
		t.Error("expected esc to leave add mode")
	}
}

func TestEntriesModelDeleteFlow(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	if _, err := store.Add("lunch", "600", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(keyMsg("d"))
	if !strings.Contains(m.View(), "Delete entry?") {
		t.Errorf("expected confirmation dialog:\n%s", m.View())
	}

	m, _ = m.Update(keyMsg("y"))
	if store.Len() != 0 {
		t.Errorf("store Len() = %d, expected 0 after confirmed delete", store.Len())
	}
	if len(m.entries) != 0 {
		t.Errorf("view shows %d entries, expected reload to empty", len(m.entries))
	}
}

func TestEntriesModelDeleteDeclined(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	if _, err := store.Add("lunch", "600", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(keyMsg("d"))
	m, _ = m.Update(keyMsg("x"))
	if store.Len() != 1 {
		t.Errorf("store Len() = %d, expected declined delete to keep entry", store.Len())
	}
	if m.InputActive() {
		t.Error("expected dialog to close on any other key")
	}
}

func TestEntriesModelStoreChanged(t *testing.T) {
	withFixedClock(t)
	store := setupStore(t)
	m := NewEntriesModel(store, testStyles(), ui.DefaultKeyMap())

	if _, err := store.Add("new", "100", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	m, _ = m.Update(ui.StoreChangedMsg{})
	if len(m.entries) != 1 {
		t.Errorf("entries = %d after StoreChangedMsg, expected reload to 1", len(m.entries))
	}
}

func TestNextRangeCycles(t *testing.T) {
	r := nextRange(nextRange(nextRange(nextRange(0))))
	if r != 0 {
		t.Errorf("four steps = %v, expected a full cycle", r)
	}
}
