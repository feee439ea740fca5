package wizard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepwise/internal/tui/theme"
	engine "github.com/mark3labs/stepwise/internal/wizard"
)

const stepNavWidth = 24

// renderStepNav renders the numbered list of pages with their state:
// ▸ current, ✓ completed, dimmed when the page cannot be jumped to.
func renderStepNav(pages []*engine.Page) string {
	s := theme.Current().S()
	lines := make([]string, 0, len(pages))

	for i, p := range pages {
		marker := " "
		style := s.StepEnabled
		switch {
		case p.Current():
			marker = "▸"
			style = s.StepCurrent
		case p.Completed():
			marker = "✓"
			style = s.StepCompleted
		case p.Disabled():
			style = s.StepDisabled
		}

		label := truncate(fmt.Sprintf("%s %d. %s", marker, i+1, p.NavTitle()), stepNavWidth-2)
		lines = append(lines, style.Render(label))
	}

	return s.StepNavBorder.Width(stepNavWidth).Render(strings.Join(lines, "\n"))
}

// truncate shortens s to width cells, adding an ellipsis when cut.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
