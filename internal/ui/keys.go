package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit     key.Binding
	Help     key.Binding
	Settings key.Binding
	Language key.Binding
	Escape   key.Binding

	// Library
	SwitchView key.Binding
	SubView    key.Binding
	Focus      key.Binding
	Filter     key.Binding
	Refresh    key.Binding
	Back       key.Binding

	// Transport
	PlayPause key.Binding
	Next      key.Binding
	Previous  key.Binding
	Shuffle   key.Binding
	SeekBack  key.Binding
	SeekAhead key.Binding
	VolUp     key.Binding
	VolDown   key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding

	// Settings
	NextTab  key.Binding
	PrevTab  key.Binding
	Decrease key.Binding
	Increase key.Binding
	Forget   key.Binding
	Scan     key.Binding

	// Logs
	Logs      key.Binding
	Follow    key.Binding
	NextMatch key.Binding
	PrevMatch key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "help.quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help.help"),
		),
		Settings: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "help.settings"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "help.language"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "help.back"),
		),

		SwitchView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "help.switchView"),
		),
		SubView: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "help.subview"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "help.focus"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "help.filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "help.refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "esc"),
			key.WithHelp("⌫", "help.back"),
		),

		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "help.play"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "control.next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "control.previous"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "help.shuffle"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "help.seek"),
		),
		SeekAhead: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "help.seek"),
		),
		VolUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "help.volume"),
		),
		VolDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "help.volume"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "help.select"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "help.tabs"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "help.tabs"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "help.adjust"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "help.adjust"),
		),
		Forget: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "help.forget"),
		),
		Scan: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "help.scan"),
		),
		Logs: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "help.logs"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "help.follow"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n/N", "help.match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.SeekBack, k.VolUp, k.SwitchView, k.Filter, k.Settings, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchView, k.SubView, k.Focus, k.Filter, k.Refresh, k.Back},
		{k.PlayPause, k.Next, k.Previous, k.Shuffle, k.SeekBack, k.VolUp},
		{k.Settings, k.NextTab, k.Decrease, k.Scan, k.Forget},
		{k.Logs, k.Follow, k.NextMatch},
		{k.Language, k.Help, k.Quit},
	}
}

// translated returns a copy of bindings whose help text is looked up in
// the message catalog.
func translated(bindings []key.Binding, t func(string, ...string) string) []key.Binding {
	out := make([]key.Binding, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		b.SetHelp(h.Key, t(h.Desc))
		out[i] = b
	}
	return out
}
