package ui

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// StoreChangedMsg is broadcast after any mutation so every view
// recomputes its derived state from the store.
type StoreChangedMsg struct{}
