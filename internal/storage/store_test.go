package storage

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwrobel/kcal/internal/entry"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)

// memBlob is an in-memory Blob for store tests
type memBlob struct {
	data    []byte
	saveErr error
	saves   int
}

func (b *memBlob) Load() ([]byte, error) {
	return b.data, nil
}

func (b *memBlob) Save(data []byte) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.saves++
	b.data = data
	return nil
}

func newTestStore(t *testing.T, blob Blob) *Store {
	t.Helper()
	s, err := Open(blob)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s.WithNow(func() time.Time { return testNow })
}

func TestOpenEmpty(t *testing.T) {
	s := newTestStore(t, &memBlob{})
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 for empty blob", s.Len())
	}
}

func TestOpenExisting(t *testing.T) {
	blob := &memBlob{data: []byte(`[{"id":1,"name":"Lunch","kcal":600,"date":"2025-03-10"}]`)}

	s := newTestStore(t, blob)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", s.Len())
	}
	if got := s.Entries()[0].Name; got != "Lunch" {
		t.Errorf("Name = %q, expected Lunch", got)
	}
}

func TestOpenCorruptRecoversEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{not json`},
		{"not a list", `{"id":1}`},
		{"json null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, &memBlob{data: []byte(tt.data)})
			if s.Len() != 0 {
				t.Errorf("Len() = %d, expected silent recovery to empty", s.Len())
			}
		})
	}
}

func TestAdd(t *testing.T) {
	blob := &memBlob{}
	s := newTestStore(t, blob)

	e, err := s.Add("Lunch", "512.6", "", "extra cheese")
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if e.ID != testNow.UnixMilli() {
		t.Errorf("ID = %d, expected %d", e.ID, testNow.UnixMilli())
	}
	if e.Kcal != 513 {
		t.Errorf("Kcal = %d, expected rounded 513", e.Kcal)
	}
	if e.Date != "2025-03-10" {
		t.Errorf("Date = %q, expected today", e.Date)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if blob.saves != 1 {
		t.Errorf("saves = %d, expected 1", blob.saves)
	}
}

func TestAddExplicitDate(t *testing.T) {
	s := newTestStore(t, &memBlob{})

	e, err := s.Add("", "300", "2025-01-15", "")
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if e.Date != "2025-01-15" {
		t.Errorf("Date = %q, expected 2025-01-15", e.Date)
	}
}

func TestAddInvalidAmount(t *testing.T) {
	tests := []string{"", "0", "-50", "abc", "NaN"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			blob := &memBlob{}
			s := newTestStore(t, blob)

			_, err := s.Add("Snack", input, "", "")
			if !errors.Is(err, entry.ErrInvalidAmount) {
				t.Errorf("Add(%q) error = %v, expected ErrInvalidAmount", input, err)
			}
			if s.Len() != 0 {
				t.Errorf("Len() = %d, expected rejected add to leave store unchanged", s.Len())
			}
			if blob.saves != 0 {
				t.Errorf("saves = %d, expected no persistence on invalid input", blob.saves)
			}
		})
	}
}

func TestAddFailedSaveLeavesStateIntact(t *testing.T) {
	blob := &memBlob{}
	s := newTestStore(t, blob)
	if _, err := s.Add("Breakfast", "400", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	blob.saveErr = errors.New("disk full")
	if _, err := s.Add("Lunch", "600", "", ""); err == nil {
		t.Fatal("Add() succeeded despite save failure")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected prior state intact after failed save", s.Len())
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t, &memBlob{})
	e, err := s.Add("Lunch", "600", "", "")
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	removed, err := s.Delete(entry.FormatID(e.ID))
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if !removed {
		t.Error("Delete() removed = false, expected true")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	blob := &memBlob{}
	s := newTestStore(t, blob)
	if _, err := s.Add("Lunch", "600", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	savesBefore := blob.saves

	removed, err := s.Delete("999999")
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if removed {
		t.Error("Delete() removed = true for absent id")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if blob.saves != savesBefore {
		t.Error("Delete() of an absent id persisted")
	}
}

func TestClear(t *testing.T) {
	blob := &memBlob{}
	s := newTestStore(t, blob)
	for _, amount := range []string{"100", "200", "300"} {
		if _, err := s.Add("", amount, "", ""); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}

	// persisted document is an empty list, not null
	if string(blob.data) != "[]" {
		t.Errorf("persisted = %s, expected []", blob.data)
	}
}

func TestImport(t *testing.T) {
	payload := `[
		{"id": 1, "name": "Lunch", "kcal": 600, "date": "2025-03-10", "note": "ok"},
		{"id": 2, "name": "no kcal", "date": "2025-03-10"},
		{"id": 3, "kcal": 0, "date": "2025-03-10"},
		{"id": 4, "kcal": -5, "date": "2025-03-10"},
		{"id": 5, "kcal": 250.6, "date": ""},
		{"id": 6, "kcal": 250.6, "date": "2025-03-09"}
	]`

	s := newTestStore(t, &memBlob{})
	if _, err := s.Add("old", "100", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	count, err := s.Import([]byte(payload))
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Import() count = %d, expected 2 valid records", count)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected replacement with the valid subset", s.Len())
	}

	// fractional kcal is rounded
	for _, e := range s.Entries() {
		if e.ID == 6 && e.Kcal != 251 {
			t.Errorf("imported Kcal = %d, expected rounded 251", e.Kcal)
		}
	}
}

// A record whose fields have the wrong JSON type is dropped like any
// other invalid record; the rest of the list still imports.
func TestImportSkipsMistypedRecords(t *testing.T) {
	payload := `[
		{"id": 1, "kcal": 500, "date": "2024-06-10"},
		{"id": 2, "kcal": "abc", "date": "2024-06-09"},
		{"id": 3, "kcal": 300, "date": 20240609},
		"not an object",
		{"id": 4, "kcal": 250, "date": "2024-06-08"}
	]`

	s := newTestStore(t, &memBlob{})
	count, err := s.Import([]byte(payload))
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Import() count = %d, expected 2 (mistyped records dropped)", count)
	}

	for _, e := range s.Entries() {
		if e.ID != 1 && e.ID != 4 {
			t.Errorf("unexpected imported entry %+v", e)
		}
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"invalid json", `{broken`, ErrParse},
		{"object not list", `{"id": 1}`, ErrNotList},
		{"string not list", `"hello"`, ErrNotList},
		{"number not list", `42`, ErrNotList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, &memBlob{})
			if _, err := s.Add("keep", "100", "", ""); err != nil {
				t.Fatalf("Add() failed: %v", err)
			}

			_, err := s.Import([]byte(tt.payload))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Import() error = %v, expected %v", err, tt.wantErr)
			}
			if s.Len() != 1 {
				t.Errorf("Len() = %d, expected failed import to leave store untouched", s.Len())
			}
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t, &memBlob{})
	if _, err := s.Add("Lunch", "600", "2025-03-10", "note"); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := s.Add("Dinner", "800", "2025-03-09", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	exported, err := s.Export()
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	other := newTestStore(t, &memBlob{})
	count, err := other.Import(exported)
	if err != nil {
		t.Fatalf("Import() of exported document failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Import() count = %d, expected 2", count)
	}

	a, _ := s.Export()
	b, _ := other.Export()
	if string(a) != string(b) {
		t.Errorf("round-trip mismatch:\n%s\nvs\n%s", a, b)
	}
}

func TestExportIsPrettyPrinted(t *testing.T) {
	s := newTestStore(t, &memBlob{})
	if _, err := s.Add("Lunch", "600", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	out, err := s.Export()
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	var pretty []map[string]any
	if err := json.Unmarshal(out, &pretty); err != nil {
		t.Fatalf("Export() produced invalid JSON: %v", err)
	}
	if len(out) == 0 || out[0] != '[' {
		t.Error("Export() should produce a JSON array document")
	}
	if !json.Valid(out) {
		t.Error("Export() produced invalid JSON")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := newTestStore(t, &memBlob{})
	if _, err := s.Add("Lunch", "600", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	view := s.Entries()
	view[0].Kcal = 9999

	if s.Entries()[0].Kcal == 9999 {
		t.Error("Entries() exposed the backing slice")
	}
}

func TestStoreWithFileBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calapp_v1.json")

	s := newTestStore(t, NewFileBlob(path))
	if _, err := s.Add("Lunch", "600", "", ""); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	// a second store opened on the same path sees the entry
	reopened := newTestStore(t, NewFileBlob(path))
	if reopened.Len() != 1 {
		t.Errorf("reopened Len() = %d, expected 1", reopened.Len())
	}
}
