package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepwise/internal/tui/theme"
	engine "github.com/mark3labs/stepwise/internal/wizard"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button is a single button in the button bar.
type Button struct {
	Type  string
	Label string
	State ButtonState
}

// ButtonBar renders the active buttons of the current page.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the buttons in display order.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Render renders the button bar right-aligned within its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		switch {
		case btn.State == ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case btn.State == ButtonFocused && btn.Type == engine.ButtonDanger:
			rendered = append(rendered, s.ButtonDanger.Render(btn.Label))
		case btn.State == ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Right, strings.Join(rendered, ""))
}

// buttonsFor resolves the visible buttons of the router's current page.
// Hidden buttons are left out; focus marks the focused type.
func buttonsFor(router *engine.ButtonRouter, focus string) []Button {
	active := router.ActiveButtons()
	out := make([]Button, 0, len(active))
	for _, b := range active {
		if router.IsHidden(b.Type) {
			continue
		}
		state := ButtonNormal
		switch {
		case router.IsDisabled(b.Type):
			state = ButtonDisabled
		case b.Type == focus:
			state = ButtonFocused
		}
		out = append(out, Button{Type: b.Type, Label: b.Label, State: state})
	}
	return out
}
