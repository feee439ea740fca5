package wizardmcp

import (
	"github.com/mark3labs/stepwise/internal/wizard"
)

// Snapshot is the JSON result of every tool call.
type Snapshot struct {
	Outcome string           `json:"outcome,omitempty"`
	Open    bool             `json:"open"`
	Current string           `json:"current,omitempty"`
	Pages   []PageSnapshot   `json:"pages"`
	Buttons []ButtonSnapshot `json:"buttons"`
}

// PageSnapshot is the observable state of one page.
type PageSnapshot struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	NavTitle             string `json:"nav_title"`
	Current              bool   `json:"current"`
	Completed            bool   `json:"completed"`
	Enabled              bool   `json:"enabled"`
	ReadyToComplete      bool   `json:"ready_to_complete"`
	NextStepDisabled     bool   `json:"next_step_disabled"`
	PreviousStepDisabled bool   `json:"previous_step_disabled"`
	StopCancel           bool   `json:"stop_cancel"`
}

// ButtonSnapshot is an active button with its derived state.
type ButtonSnapshot struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Scope    string `json:"scope"`
	Disabled bool   `json:"disabled"`
	Hidden   bool   `json:"hidden"`
}

// takeSnapshot captures w. Callers hold the engine lock.
func takeSnapshot(w *wizard.Wizard, outcome string) Snapshot {
	snap := Snapshot{
		Outcome: outcome,
		Open:    w.IsOpen(),
		Pages:   []PageSnapshot{},
		Buttons: []ButtonSnapshot{},
	}
	if cur := w.CurrentPage(); cur != nil {
		snap.Current = cur.ID()
	}

	for _, p := range w.Pages().Pages() {
		snap.Pages = append(snap.Pages, PageSnapshot{
			ID:                   p.ID(),
			Title:                p.Title(),
			NavTitle:             p.NavTitle(),
			Current:              p.Current(),
			Completed:            p.Completed(),
			Enabled:              p.Enabled(),
			ReadyToComplete:      p.ReadyToComplete(),
			NextStepDisabled:     p.NextStepDisabled(),
			PreviousStepDisabled: p.PreviousStepDisabled(),
			StopCancel:           p.StopCancel(),
		})
	}

	router := w.Buttons()
	for _, b := range router.ActiveButtons() {
		snap.Buttons = append(snap.Buttons, ButtonSnapshot{
			Type:     b.Type,
			Label:    b.Label,
			Scope:    b.Scope.String(),
			Disabled: router.IsDisabled(b.Type),
			Hidden:   router.IsHidden(b.Type),
		})
	}
	return snap
}
