package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI and CLI output.
type Styles struct {
	HeaderTitle  lipgloss.Style
	HeaderAction lipgloss.Style

	ModalContainer lipgloss.Style
	PageTitle      lipgloss.Style

	// Step navigation
	StepCurrent   lipgloss.Style
	StepCompleted lipgloss.Style
	StepEnabled   lipgloss.Style
	StepDisabled  lipgloss.Style
	StepNavBorder lipgloss.Style

	// Button bar
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDanger   lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style

	// Unified diff lines
	DiffInsert lipgloss.Style
	DiffDelete lipgloss.Style
}
