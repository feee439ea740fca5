package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Diff colors
	DiffInsertBg string
	DiffDeleteBg string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var (
	current     *Theme
	currentOnce sync.Once
)

// Current returns the active theme.
func Current() *Theme {
	currentOnce.Do(func() {
		current = NewCatppuccinMocha()
	})
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	return &Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		HeaderAction: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),

		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Secondary)).
			Background(lipgloss.Color(t.BgBase)).
			Padding(1, 2),
		PageTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Bold(true),

		StepCurrent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		StepCompleted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		StepEnabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),
		StepDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		StepNavBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color(t.BgSurface2)).
			PaddingRight(1),

		ButtonNormal: button.
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgSurface0)),
		ButtonDisabled: button.
			Foreground(lipgloss.Color(t.FgMuted)).
			Background(lipgloss.Color(t.BgMantle)),
		ButtonFocused: button.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Secondary)).
			Bold(true),
		ButtonDanger: button.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Error)).
			Bold(true),

		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface2)),

		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		DiffInsert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Background(lipgloss.Color(t.DiffInsertBg)),
		DiffDelete: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Background(lipgloss.Color(t.DiffDeleteBg)),
	}
}
