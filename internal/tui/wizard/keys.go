package wizard

import "charm.land/bubbles/v2/key"

// KeyMap holds the wizard key bindings.
type KeyMap struct {
	Next          key.Binding
	Previous      key.Binding
	Cancel        key.Binding
	FocusNext     key.Binding
	FocusPrevious key.Binding
	Activate      key.Binding
	HeaderAction  key.Binding
	ToggleNav     key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "b"),
			key.WithHelp("←", "back"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		FocusPrevious: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press"),
		),
		HeaderAction: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "action"),
		),
		ToggleNav: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "steps"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// hints returns the hint bar pairs for the bindings shown to the user.
func (k KeyMap) hints() []string {
	var pairs []string
	for _, b := range []key.Binding{k.Previous, k.Next, k.FocusNext, k.Activate, k.ToggleNav, k.Cancel} {
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return append(pairs, "1-9", "jump")
}
