// Package entry defines the calorie intake entry model and its
// creation-time validation rules.
package entry

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Common validation errors for entry creation
var (
	// ErrInvalidAmount is returned when the amount input is not a
	// positive finite number
	ErrInvalidAmount = errors.New("amount must be a positive number")
)

// Entry represents a single logged calorie intake event.
// Name and Note are optional free-text fields supplied by the user and
// must be sanitized before display.
type Entry struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
	Kcal int    `json:"kcal"`
	Date string `json:"date"`
	Note string `json:"note,omitempty"`
}

// ParseAmount parses a raw amount input string and validates it.
// Returns ErrInvalidAmount when the input is empty, unparseable,
// non-finite, or not strictly positive.
func ParseAmount(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return amount, nil
}

// New creates an Entry from validated parts. The amount is rounded to
// the nearest integer before storage and the ID is derived from the
// creation timestamp (unix milliseconds).
func New(name string, amount float64, date, note string, createdAt time.Time) Entry {
	return Entry{
		ID:   createdAt.UnixMilli(),
		Name: strings.TrimSpace(name),
		Kcal: int(math.Round(amount)),
		Date: date,
		Note: strings.TrimSpace(note),
	}
}

// FormatID renders an entry ID the way it is matched on delete.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// DisplayName returns the entry name, or a generic label when the name
// is empty.
func (e Entry) DisplayName() string {
	if e.Name == "" {
		return "Meal"
	}
	return e.Name
}
