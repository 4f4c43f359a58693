package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mwrobel/kcal/internal/dateutil"
	"github.com/mwrobel/kcal/internal/entry"
)

// Import errors, surfaced to the user at the command boundary
var (
	// ErrParse is returned when the import payload is not valid JSON
	ErrParse = errors.New("payload is not valid JSON")
	// ErrNotList is returned when the import payload parses but is not a list
	ErrNotList = errors.New("payload does not contain a list of entries")
)

// Store owns the in-memory entry collection and keeps it synchronized
// with the persisted blob document: loaded once at open, rewritten as a
// whole after every mutation. It is the single logical writer.
type Store struct {
	blob    Blob
	now     func() time.Time
	entries []entry.Entry
}

// Open loads the persisted document into a new Store. A missing or
// corrupt document recovers silently to an empty collection.
func Open(blob Blob) (*Store, error) {
	data, err := blob.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	s := &Store{
		blob:    blob,
		now:     time.Now,
		entries: []entry.Entry{},
	}

	if len(data) > 0 {
		var loaded []entry.Entry
		if err := json.Unmarshal(data, &loaded); err == nil && loaded != nil {
			s.entries = loaded
		}
	}

	return s, nil
}

// WithNow replaces the store's clock (for testing).
func (s *Store) WithNow(now func() time.Time) *Store {
	s.now = now
	return s
}

// Entries returns a copy of the collection; callers never see or
// mutate the backing slice.
func (s *Store) Entries() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Add validates and appends a new entry, then persists. The amount
// input must parse to a positive finite number or the store is left
// unchanged and entry.ErrInvalidAmount is returned. An empty date input
// defaults to today.
func (s *Store) Add(name, amountInput, dateInput, note string) (*entry.Entry, error) {
	amount, err := entry.ParseAmount(amountInput)
	if err != nil {
		return nil, err
	}

	now := s.now()
	e := entry.New(name, amount, dateutil.ToISO(strings.TrimSpace(dateInput), now), note, now)

	updated := append(s.Entries(), e)
	if err := s.persist(updated); err != nil {
		return nil, err
	}
	s.entries = updated
	return &e, nil
}

// Delete removes the entry whose ID matches the given string. IDs are
// compared as strings to tolerate representation mismatches. Removing
// an absent ID is a no-op; the removed flag reports whether anything
// changed.
func (s *Store) Delete(id string) (bool, error) {
	id = strings.TrimSpace(id)
	kept := make([]entry.Entry, 0, len(s.entries))
	removed := false
	for _, e := range s.entries {
		if entry.FormatID(e.ID) == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}

	if err := s.persist(kept); err != nil {
		return false, err
	}
	s.entries = kept
	return true, nil
}

// Clear empties the collection and persists. Confirmation of this
// destructive action is the caller's responsibility.
func (s *Store) Clear() error {
	cleared := []entry.Entry{}
	if err := s.persist(cleared); err != nil {
		return err
	}
	s.entries = cleared
	return nil
}

// importRecord is the loose shape accepted from import payloads. Only
// amount and date are validated; name and note are optional.
type importRecord struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	Kcal *float64 `json:"kcal"`
	Date string   `json:"date"`
	Note string   `json:"note"`
}

// Import replaces the whole collection with the structurally valid
// subset of the payload: records with a positive numeric kcal field and
// a non-empty date. Invalid records, including ones whose fields have
// the wrong JSON type, are dropped silently. A payload that is not
// valid JSON fails with ErrParse and one that is not a list fails with
// ErrNotList; both leave the existing collection untouched.
func (s *Store) Import(raw []byte) (int, error) {
	var top any
	if err := json.Unmarshal(raw, &top); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, ok := top.([]any); !ok {
		return 0, ErrNotList
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// records are decoded one at a time so a single mistyped record
	// never fails the whole import
	imported := make([]entry.Entry, 0, len(items))
	for _, item := range items {
		var r importRecord
		if err := json.Unmarshal(item, &r); err != nil {
			continue
		}
		if r.Kcal == nil || *r.Kcal <= 0 || r.Date == "" {
			continue
		}
		imported = append(imported, entry.Entry{
			ID:   r.ID,
			Name: r.Name,
			Kcal: int(math.Round(*r.Kcal)),
			Date: r.Date,
			Note: r.Note,
		})
	}

	if err := s.persist(imported); err != nil {
		return 0, err
	}
	s.entries = imported
	return len(imported), nil
}

// Export serializes the full collection as a pretty-printed JSON
// document. Pure; does not touch persisted state.
func (s *Store) Export() ([]byte, error) {
	return json.MarshalIndent(s.entries, "", "  ")
}

// persist rewrites the whole document. The in-memory collection is
// only swapped after the write succeeds, so a failed save leaves prior
// state fully intact.
func (s *Store) persist(entries []entry.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := s.blob.Save(data); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}
