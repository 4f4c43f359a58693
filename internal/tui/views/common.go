package views

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwrobel/kcal/internal/entry"
	"github.com/mwrobel/kcal/internal/render"
	"github.com/mwrobel/kcal/internal/tui/ui"
)

// RenderEntryList renders entries with aligned columns, highlighting
// the cursor row. Names and notes are sanitized before display.
func RenderEntryList(entries []entry.Entry, styles ui.Styles, cursor, width int) string {
	if len(entries) == 0 {
		return ""
	}

	maxNameWidth := 0
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = render.Sanitize(e.DisplayName())
		if n := utf8.RuneCountInString(names[i]); n > maxNameWidth {
			maxNameWidth = n
		}
	}

	// leave room for date and kcal columns; width 0 means unmeasured
	if width > 0 {
		maxAllowed := width - 30
		if maxAllowed < 12 {
			maxAllowed = 12
		}
		if maxNameWidth > maxAllowed {
			maxNameWidth = maxAllowed
		}
	}

	var b strings.Builder
	for i, e := range entries {
		style := styles.EntryNormal
		if i == cursor {
			style = styles.EntrySelected
		}

		name := names[i]
		// truncate on runes so multi-byte names are never cut mid-rune
		if runes := []rune(name); len(runes) > maxNameWidth {
			name = string(runes[:maxNameWidth-1]) + "…"
		}

		dateCol := styles.EntryDate.Render(e.Date)
		nameCol := styles.EntryName.Render(fmt.Sprintf("%-*s", maxNameWidth, name))
		kcalCol := styles.EntryKcal.Render(fmt.Sprintf("%d kcal", e.Kcal))

		line := fmt.Sprintf("%s %s %s", dateCol, nameCol, kcalCol)
		if e.Note != "" {
			line += " " + styles.EntryNote.Render("• "+render.Sanitize(e.Note))
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// timeNow is swapped out in tests.
var timeNow = time.Now

func broadcastStoreChanged() tea.Cmd {
	return func() tea.Msg {
		return ui.StoreChangedMsg{}
	}
}
