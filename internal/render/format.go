// Package render formats entries, totals, and the weekly chart for
// terminal display. Entry names and notes are untrusted user text and
// are sanitized here before they reach any output surface.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mwrobel/kcal/internal/aggregate"
	"github.com/mwrobel/kcal/internal/entry"
)

// Sanitize strips control characters from untrusted user text so it
// cannot inject escape sequences into the terminal.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// FormatEntry renders one entry as a list line: id, date, name, kcal
// and the optional note.
func FormatEntry(e entry.Entry) string {
	line := fmt.Sprintf("%s  %s  %s – %d kcal",
		entry.FormatID(e.ID), e.Date, Sanitize(e.DisplayName()), e.Kcal)
	if e.Note != "" {
		line += fmt.Sprintf(" • %s", Sanitize(e.Note))
	}
	return line
}

// FormatTotals renders the standard summary block. Values are shown
// rounded to whole kcal.
func FormatTotals(t aggregate.Totals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today:        %d kcal\n", t.Today)
	fmt.Fprintf(&b, "Last 7 days:  %d kcal\n", t.Week)
	fmt.Fprintf(&b, "Week average: %.0f kcal/day\n", t.WeekAverage)
	return b.String()
}

// Pluralize returns the plural form of a word when count != 1.
// Handles simple cases by appending "s" or converting "y" to "ies".
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if len(word) > 1 && strings.HasSuffix(word, "y") && !strings.ContainsRune("aeiou", rune(word[len(word)-2])) {
		return word[:len(word)-1] + "ies"
	}
	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(word, suffix) {
			return word + "es"
		}
	}
	return word + "s"
}
