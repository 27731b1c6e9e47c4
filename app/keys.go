package app

import "charm.land/bubbles/v2/key"

// KeyMap defines all global keybindings.
type KeyMap struct {
	// Global
	Quit key.Binding
	Help key.Binding

	// Navigation
	ScrollUp     key.Binding // k
	ScrollDown   key.Binding // j
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding // u
	HalfPageDown key.Binding // d
	ScrollTop    key.Binding
	ScrollBottom key.Binding
	NextSection  key.Binding
	PrevSection  key.Binding

	// Toggles
	ToggleSticky    key.Binding
	ToggleScrollbar key.Binding
	CycleColumns    key.Binding
	ToggleAnimation key.Binding
	CycleTheme      key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "space", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("u", "ctrl+u"),
			key.WithHelp("u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("d", "ctrl+d"),
			key.WithHelp("d", "half page down"),
		),
		ScrollTop: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		ScrollBottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "end"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p", "prev section"),
		),
		ToggleSticky: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sticky headers"),
		),
		ToggleScrollbar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scrollbar"),
		),
		CycleColumns: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "columns"),
		),
		ToggleAnimation: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animate jumps"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollDown, k.PageDown, k.NextSection, k.ScrollBottom, k.Help, k.Quit}
}

// FullHelp returns every binding grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown},
		{k.ScrollTop, k.ScrollBottom, k.NextSection, k.PrevSection},
		{k.ToggleSticky, k.ToggleScrollbar, k.CycleColumns, k.ToggleAnimation, k.CycleTheme},
		{k.Help, k.Quit},
	}
}
