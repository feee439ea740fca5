package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPage_ID(t *testing.T) {
	w := New(WithIDPrefix("prefix-"))
	var pages []*Page
	for i := 0; i < 5; i++ {
		pages = append(pages, w.AddPage(PageOptions{Title: "Page"}))
	}
	third := pages[2]

	require.Equal(t, "prefix-3", third.ID(), "ordinal fallback")

	third.SetCustomID("ohai")
	require.Equal(t, "prefix-ohai", third.ID())
	require.Equal(t, "ohai", third.CustomID())

	third.SetCustomID("")
	require.Equal(t, "prefix-3", third.ID(), "clearing the custom id reverts to the ordinal")
}

func TestPage_IDFromOptions(t *testing.T) {
	w := New()
	p := w.AddPage(PageOptions{ID: "basics", Title: "Basics"})
	require.Equal(t, "wizard-page-basics", p.ID())
}

func TestPage_ReadyToComplete(t *testing.T) {
	_, pages, _, _ := newTestWizard(t, 1)
	p := pages[0]

	require.False(t, p.NextStepDisabled())
	require.True(t, p.ReadyToComplete())

	p.SetNextStepDisabled(true)
	require.False(t, p.ReadyToComplete())
}

func TestPage_Completed(t *testing.T) {
	tests := []struct {
		name             string
		nextStepDisabled bool
		completed        bool
		want             bool
	}{
		{"complete and ready", false, true, true},
		{"not complete", false, false, false},
		{"complete but not ready", true, true, false},
		{"neither", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pages, _, _ := newTestWizard(t, 1)
			p := pages[0]
			p.SetNextStepDisabled(tt.nextStepDisabled)
			p.SetCompleted(tt.completed)
			require.Equal(t, tt.want, p.Completed())
		})
	}
}

func TestPage_CompletedRevocationIsReadSide(t *testing.T) {
	_, pages, _, _ := newTestWizard(t, 1)
	p := pages[0]

	p.SetCompleted(true)
	p.SetNextStepDisabled(true)
	require.False(t, p.Completed())

	// The stored flag survives; readiness restores it
	p.SetNextStepDisabled(false)
	require.True(t, p.Completed())
}

func TestPage_Current(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 2)

	w.SetCurrentPage(pages[1])
	require.False(t, pages[0].Current())
	require.True(t, pages[1].Current())

	pages[0].MakeCurrent()
	require.True(t, pages[0].Current())
}

func TestPage_PreviousCompleted(t *testing.T) {
	_, pages, _, _ := newTestWizard(t, 2)
	first, second := pages[0], pages[1]

	require.True(t, first.PreviousCompleted(), "no previous page")

	require.False(t, second.PreviousCompleted())
	first.SetCompleted(true)
	require.True(t, second.PreviousCompleted())

	// Revoking readiness on the previous page revokes its completion
	first.SetNextStepDisabled(true)
	require.False(t, second.PreviousCompleted())
}

func TestPage_Enabled(t *testing.T) {
	t.Run("current page is always enabled", func(t *testing.T) {
		w, pages, _, _ := newTestWizard(t, 3)
		w.SetCurrentPage(pages[2])
		require.False(t, pages[1].Completed())
		require.True(t, pages[2].Enabled())
		require.False(t, pages[2].Disabled())
	})

	t.Run("completed page is enabled", func(t *testing.T) {
		_, pages, _, _ := newTestWizard(t, 3)
		pages[2].SetCompleted(true)
		require.True(t, pages[2].Enabled())
	})

	t.Run("page after completed page is enabled", func(t *testing.T) {
		_, pages, _, _ := newTestWizard(t, 3)
		pages[1].SetCompleted(true)
		require.True(t, pages[2].Enabled())
	})

	t.Run("first page is enabled", func(t *testing.T) {
		w, pages, _, _ := newTestWizard(t, 3)
		w.SetCurrentPage(pages[2])
		require.True(t, pages[0].Enabled())
	})

	t.Run("not current, not completed, previous not completed", func(t *testing.T) {
		w, pages, _, _ := newTestWizard(t, 3)
		w.SetCurrentPage(pages[0])
		require.False(t, pages[2].Enabled())
		require.True(t, pages[2].Disabled())

		w.SetCurrentPage(pages[2])
		require.True(t, pages[2].Enabled())
		require.False(t, pages[2].Disabled())
	})
}

func TestPage_NavTitle(t *testing.T) {
	w := New()
	plain := w.AddPage(PageOptions{Title: "Mandatory Title"})
	short := w.AddPage(PageOptions{Title: "Mandatory Title", NavTitle: "Optional nav title"})

	require.Equal(t, "Mandatory Title", plain.NavTitle())
	require.Equal(t, "Optional nav title", short.NavTitle())
	require.NotEqual(t, short.Title(), short.NavTitle())
}

func TestPage_ContentPresence(t *testing.T) {
	w := New()
	bare := w.AddPage(PageOptions{Title: "Bare", Body: "Hello"})
	rich := w.AddPage(PageOptions{
		Title:         "Rich",
		HeaderActions: []HeaderAction{{ID: "fhtagn", Label: "hi"}},
		Buttons:       []Button{{Type: ButtonCancel, Label: "Cancel"}},
	})

	require.Equal(t, "Hello", bare.Body())
	require.Nil(t, bare.HeaderActions())
	require.False(t, bare.HasHeaderActions())
	require.Nil(t, bare.Buttons())
	require.False(t, bare.HasButtons())

	require.True(t, rich.HasHeaderActions())
	require.Equal(t, "fhtagn", rich.HeaderActions()[0].ID)
	require.True(t, rich.HasButtons())
	require.Equal(t, ButtonCancel, rich.Buttons()[0].Type)
}

func TestPage_StopCancelDefault(t *testing.T) {
	_, pages, _, _ := newTestWizard(t, 2)
	require.False(t, pages[1].StopCancel())
}

func TestPage_PropertyChangeNotifications(t *testing.T) {
	tests := []struct {
		name string
		kind EventKind
		get  func(*Page) bool
		set  func(*Page, bool)
	}{
		{"nextStepDisabled", EventNextStepDisabledChange, (*Page).NextStepDisabled, (*Page).SetNextStepDisabled},
		{"previousStepDisabled", EventPreviousStepDisabledChange, (*Page).PreviousStepDisabled, (*Page).SetPreviousStepDisabled},
		{"stopCancel", EventStopCancelChange, (*Page).StopCancel, (*Page).SetStopCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pages, _, rec := newTestWizard(t, 1)
			p := pages[0]
			pageRec := &recorder{}
			p.Subscribe(pageRec.listen)

			// Same value: no notification
			tt.set(p, tt.get(p))
			require.Empty(t, rec.events)
			require.Empty(t, pageRec.events)

			tt.set(p, true)
			require.True(t, tt.get(p))
			require.Len(t, pageRec.events, 1)
			require.Equal(t, tt.kind, pageRec.events[0].Kind)
			require.True(t, pageRec.events[0].Value)
			require.Equal(t, p.ID(), pageRec.events[0].PageID)
			require.Equal(t, pageRec.events, rec.events, "wizard listeners see page events")

			// Idempotent set
			tt.set(p, true)
			require.Len(t, pageRec.events, 1)

			tt.set(p, false)
			require.Len(t, pageRec.events, 2)
			require.False(t, pageRec.events[1].Value)
		})
	}
}

func TestPage_StepIndicatorID(t *testing.T) {
	w := New()
	p := w.AddPage(PageOptions{Title: "One"})

	require.Equal(t, "wizard-step-1", p.StepIndicatorID())

	p.SetCustomID("onoez")
	require.Equal(t, "wizard-step-onoez", p.StepIndicatorID(), "computed from the current id")

	require.NoError(t, w.RemovePage(p))
	require.Equal(t, "wizard-step-onoez", p.StepIndicatorID(), "detached pages still map")
}

func TestPage_SubscribeOnlySeesOwnEvents(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 2)
	other := &recorder{}
	unsubscribe := pages[1].Subscribe(other.listen)

	w.SetCurrentPage(pages[0])
	require.Empty(t, other.events, "load of another page is not delivered")

	w.SetCurrentPage(pages[1])
	require.Equal(t, []EventKind{EventLoad}, other.kinds())

	unsubscribe()
	w.SetCurrentPage(pages[1])
	require.Len(t, other.events, 1)
}
